// Package converters собирает встроенные конвертеры ошибок.
package converters

import (
	"github.com/Kargones/ufe/internal/converters/encodingconv"
	"github.com/Kargones/ufe/internal/converters/fsconv"
	"github.com/Kargones/ufe/internal/converters/netconv"
	"github.com/Kargones/ufe/internal/converters/schemaconv"
	"github.com/Kargones/ufe/internal/converters/sqlconv"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// RegisterAll регистрирует все встроенные конвертеры в фиксированном порядке.
// Вызывается один раз при старте, до Freeze.
func RegisterAll(r *ufe.Registry) {
	fsconv.Register(r)
	netconv.Register(r)
	encodingconv.Register(r)
	schemaconv.Register(r)
	sqlconv.Register(r)
}
