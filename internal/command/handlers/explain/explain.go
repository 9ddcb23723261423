// Package explain реализует команду explain: проверку документа YAML или JSON
// (синтаксис и, если задана, JSON-схема) с объяснением найденных ошибок.
package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Kargones/ufe/internal/command"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/pkg/apperrors"
	"github.com/Kargones/ufe/internal/pkg/document"
	"github.com/Kargones/ufe/internal/pkg/output"
	"golang.org/x/text/message"
)

func RegisterCmd() error {
	return command.Register(&Handler{})
}

// Data — результат успешной проверки.
type Data struct {
	Input  string `json:"input"`
	Format string `json:"format"`
	Schema string `json:"schema,omitempty"`
	Valid  bool   `json:"valid"`
}

// Handler обрабатывает команду explain.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActExplain
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Проверка документа (UFE_INPUT) и объяснение найденных ошибок"
}

// Execute читает документ, проверяет его по схеме и выводит подтверждение.
// Ошибки возвращаются обёрнутыми в AppError и объясняются вызывающим.
func (h *Handler) Execute(_ context.Context, env *command.Env) error {
	p := env.Explain.Printer()
	cfg := env.Config
	log := env.Logger.With(slog.String("input", cfg.Input))

	if cfg.Input == "" {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			p.Sprintf("No document to check"), nil).
			WithHint(p.Sprintf("Set UFE_INPUT to the path of a YAML or JSON document."))
	}

	doc, err := document.Load(cfg.Input)
	if err != nil {
		return wrapLoadError(p.Sprintf, cfg.Input, err)
	}
	log.Debug("документ разобран", slog.String("format", doc.Format))

	if cfg.Schema != "" {
		schema, err := document.LoadSchema(cfg.Schema)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrInputSchema,
				p.Sprintf("Could not check %s", cfg.Input), err).
				WithHint(p.Sprintf("Check the UFE_SCHEMA setting."))
		}
		if err := document.Validate(doc, schema); err != nil {
			return apperrors.NewAppError(apperrors.ErrInputValidation,
				p.Sprintf("Document %s does not match the schema", cfg.Input), err)
		}
		log.Debug("документ соответствует схеме", slog.String("schema", cfg.Schema))
	}

	data := &Data{Input: cfg.Input, Format: doc.Format, Schema: cfg.Schema, Valid: true}
	if !env.JSON() {
		_, err := fmt.Fprintln(env.Stdout, p.Sprintf("Document %s is valid", cfg.Input))
		return err
	}
	return env.WriteResult(&output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActExplain,
		Data:    data,
	})
}

// wrapLoadError различает ошибку чтения файла и синтаксическую ошибку.
func wrapLoadError(sprintf func(message.Reference, ...any) string, path string, err error) error {
	var parseErr *document.ParseError
	if errors.As(err, &parseErr) {
		return apperrors.NewAppError(apperrors.ErrInputParse,
			sprintf("Document %s is not well-formed", path), err)
	}
	return apperrors.NewAppError(apperrors.ErrInputRead,
		sprintf("Could not read the document %s", path), err).
		WithHint(sprintf("Check the UFE_INPUT setting."))
}
