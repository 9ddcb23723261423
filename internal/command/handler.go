// Package command содержит интерфейс обработчика команды, реестр команд
// и окружение, в котором команды выполняются.
package command

import (
	"context"
	"io"
	"time"

	"github.com/Kargones/ufe/internal/config"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/pkg/logging"
	"github.com/Kargones/ufe/internal/pkg/metrics"
	"github.com/Kargones/ufe/internal/pkg/output"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Handler определяет интерфейс обработчика команды.
type Handler interface {
	// Name возвращает имя команды в kebab-case (см. internal/constants).
	Name() string

	// Description возвращает описание команды для вывода в help.
	Description() string

	// Execute выполняет команду. Результат пишется в env.Stdout через env.WriteResult.
	// Ошибка команды объясняется вызывающим через Env.Fail.
	Execute(ctx context.Context, env *Env) error
}

// Env — зависимости, доступные обработчику.
type Env struct {
	Config  *config.Config
	Logger  logging.Logger
	Writer  output.Writer
	Metrics metrics.Collector

	// Stdout получает результат команды. Логи сюда не пишутся.
	Stdout io.Writer

	// Explain — контекст объяснений с замороженным реестром конвертеров.
	Explain *ufe.Context

	TraceID string
	Start   time.Time
}

// Metadata возвращает метаданные выполнения для Result.
func (e *Env) Metadata() *output.Metadata {
	return &output.Metadata{
		DurationMs: time.Since(e.Start).Milliseconds(),
		TraceID:    e.TraceID,
		APIVersion: constants.APIVersion,
	}
}

// WriteResult дополняет result метаданными и записывает его в Stdout.
func (e *Env) WriteResult(result *output.Result) error {
	if result.Metadata == nil {
		result.Metadata = e.Metadata()
	}
	return e.Writer.Write(e.Stdout, result)
}

// JSON сообщает, выводится ли результат в JSON.
func (e *Env) JSON() bool {
	_, ok := e.Writer.(*output.JSONWriter)
	return ok
}
