package metrics

import "errors"

// Ошибки Validate называют переменные окружения, которые нужно исправить.
var (
	ErrPushgatewayURLRequired = errors.New("UFE_METRICS_PUSHGATEWAY_URL is required when UFE_METRICS_ENABLED is set")
	ErrPushgatewayURLInvalid  = errors.New("UFE_METRICS_PUSHGATEWAY_URL must be an absolute http(s) URL")
	ErrJobNameRequired        = errors.New("UFE_METRICS_JOB_NAME is required")
	ErrInvalidTimeout         = errors.New("UFE_METRICS_TIMEOUT must be positive")
)
