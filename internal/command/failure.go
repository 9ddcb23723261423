package command

import (
	"log/slog"

	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/pkg/apperrors"
	"github.com/Kargones/ufe/internal/pkg/logging"
	"github.com/Kargones/ufe/internal/pkg/output"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Fail объясняет ошибку команды name, выводит объяснение в Stdout
// и возвращает построенное дерево.
func (e *Env) Fail(name string, err error) ufe.UserFacingError {
	tree := ufe.Explain(err, e.Explain)

	e.Logger.Warn("команда завершилась с ошибкой",
		slog.String("command", name),
		slog.String("code", apperrors.Code(err)),
		logging.Explanation(tree),
	)
	if e.Metrics != nil {
		e.Metrics.RecordExplanation(name, tree)
	}

	if writeErr := e.WriteResult(output.NewErrorResult(name, apperrors.Code(err), tree)); writeErr != nil {
		e.Logger.Error("не удалось вывести объяснение ошибки", slog.String("error", writeErr.Error()))
	}
	return tree
}

// ExitCode возвращает код завершения процесса для ошибки команды.
func ExitCode(err error) int {
	if err == nil {
		return constants.ExitOK
	}
	switch apperrors.Code(err) {
	case apperrors.ErrCommandNotFound:
		return constants.ExitUnknownCommand
	case apperrors.ErrInputParse, apperrors.ErrInputValidation:
		return constants.ExitInvalidInput
	case apperrors.ErrDatabaseConnect:
		return constants.ExitDatabase
	default:
		return constants.ExitFailure
	}
}
