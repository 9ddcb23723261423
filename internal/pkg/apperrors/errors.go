// Package apperrors предоставляет структурированные ошибки приложения.
// Переименован из errors чтобы избежать конфликта со стандартной библиотекой.
package apperrors

import (
	"fmt"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Коды ошибок в иерархическом формате: CATEGORY.SPECIFIC_ERROR.
// Позволяет grep по категориям: `grep "INPUT\."` для всех ошибок входных данных.
const (
	// Category: CONFIG — ошибки загрузки и валидации конфигурации.
	ErrConfigLoad     = "CONFIG.LOAD_FAILED"
	ErrConfigValidate = "CONFIG.VALIDATION_FAILED"

	// Category: COMMAND — ошибки выполнения команд.
	ErrCommandNotFound = "COMMAND.NOT_FOUND"
	ErrCommandExec     = "COMMAND.EXEC_FAILED"

	// Category: INPUT — ошибки проверяемого документа и схемы.
	ErrInputRead       = "INPUT.READ_FAILED"
	ErrInputParse      = "INPUT.PARSE_FAILED"
	ErrInputSchema     = "INPUT.SCHEMA_FAILED"
	ErrInputValidation = "INPUT.VALIDATION_FAILED"

	// Category: DATABASE — ошибки проверки подключения к базе данных.
	ErrDatabaseConnect = "DATABASE.CONNECT_FAILED"

	// Category: OUTPUT — ошибки форматирования вывода.
	ErrOutputFormat = "OUTPUT.FORMAT_FAILED"
)

// AppError представляет структурированную ошибку приложения.
// Реализует error, поддерживает wrapping через Unwrap() и объясняет себя сам (ufe.Explainer).
//
// ВАЖНО: Message и Hint НЕ ДОЛЖНЫ содержать секреты (пароли, токены, ключи).
//
// Пример использования:
//
//	return apperrors.NewAppError(apperrors.ErrInputRead,
//	    "не удалось прочитать документ", err).
//	    WithHint("проверьте значение UFE_INPUT")
type AppError struct {
	// Code — машиночитаемый код ошибки в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Message — человекочитаемое описание ошибки.
	Message string `json:"message"`

	// Hint — что может сделать пользователь. Необязательно.
	Hint string `json:"hint,omitempty"`

	// Cause — wrapped оригинальная ошибка.
	// Не сериализуется в JSON: объясняется отдельно через ufe.
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает wrapped ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithHint возвращает ту же ошибку с подсказкой для пользователя.
func (e *AppError) WithHint(hint string) *AppError {
	e.Hint = hint
	return e
}

// Explain строит объяснение: сообщение, подсказка и объяснение причины.
// В подробном режиме к пояснению добавляется код ошибки.
func (e *AppError) Explain(ctx *ufe.Context) ufe.UserFacingError {
	reason := e.Hint
	if ctx.Verbose() {
		code := "[" + e.Code + "]"
		if reason == "" {
			reason = code
		} else {
			reason += "\n" + code
		}
	}

	node := ufe.Leaf(ufe.NewCause().
		WithSummary(e.Message).
		WithExtendedReason(reason))
	if e.Cause != nil {
		node = node.WithRelated(ufe.Dispatch(e.Cause, ctx))
	}
	return node
}

// NewAppError создаёт новый AppError с заданным кодом, сообщением и причиной.
//
// ВАЖНО: message НЕ ДОЛЖЕН содержать секреты!
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Code возвращает код первой AppError в цепочке err или пустую строку.
func Code(err error) string {
	if appErr, ok := ufe.As[*AppError](err); ok {
		return appErr.Code
	}
	return ""
}
