// Package output предоставляет структуры и интерфейсы для форматирования
// результатов команд и деревьев объяснений в JSON и текстовом формате.
package output

import "github.com/Kargones/ufe/internal/pkg/ufe"

// StatusSuccess и StatusError — возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result представляет структурированный результат выполнения команды.
// Используется для сериализации в JSON (UFE_OUTPUT_FORMAT=json)
// или для формирования человекочитаемого вывода (UFE_OUTPUT_FORMAT=text).
type Result struct {
	// Status содержит статус выполнения: "success" или "error".
	Status string `json:"status"`

	// Command содержит имя выполненной команды.
	Command string `json:"command"`

	// Data содержит command-specific payload.
	Data any `json:"data,omitempty"`

	// Error содержит код и сообщение ошибки (только при status="error").
	Error *ErrorInfo `json:"error,omitempty"`

	// Explanation — дерево объяснений ошибки для пользователя.
	Explanation *ufe.UserFacingError `json:"explanation,omitempty"`

	// Metadata содержит метаданные выполнения.
	Metadata *Metadata `json:"metadata,omitempty"`
}

// ErrorInfo содержит информацию об ошибке в структурированном виде.
// ВАЖНО: Message НЕ ДОЛЖЕН содержать секреты!
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	// DurationMs — время выполнения команды в миллисекундах.
	DurationMs int64 `json:"duration_ms"`

	// TraceID — идентификатор трассировки для корреляции логов.
	TraceID string `json:"trace_id,omitempty"`

	// APIVersion — версия формата API для backward compatibility.
	APIVersion string `json:"api_version"`
}

// NewErrorResult создаёт Result со статусом "error" и объяснением.
// code может быть пустым, тогда поле Error не заполняется.
func NewErrorResult(command, code string, explanation ufe.UserFacingError) *Result {
	result := &Result{
		Status:      StatusError,
		Command:     command,
		Explanation: &explanation,
	}
	if code != "" {
		result.Error = &ErrorInfo{Code: code, Message: explanation.Error.Summary}
	}
	return result
}
