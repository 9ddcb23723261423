package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

func TestErrorCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"ErrConfigLoad", ErrConfigLoad, "CONFIG.LOAD_FAILED"},
		{"ErrConfigValidate", ErrConfigValidate, "CONFIG.VALIDATION_FAILED"},
		{"ErrCommandNotFound", ErrCommandNotFound, "COMMAND.NOT_FOUND"},
		{"ErrCommandExec", ErrCommandExec, "COMMAND.EXEC_FAILED"},
		{"ErrInputRead", ErrInputRead, "INPUT.READ_FAILED"},
		{"ErrInputParse", ErrInputParse, "INPUT.PARSE_FAILED"},
		{"ErrInputSchema", ErrInputSchema, "INPUT.SCHEMA_FAILED"},
		{"ErrInputValidation", ErrInputValidation, "INPUT.VALIDATION_FAILED"},
		{"ErrDatabaseConnect", ErrDatabaseConnect, "DATABASE.CONNECT_FAILED"},
		{"ErrOutputFormat", ErrOutputFormat, "OUTPUT.FORMAT_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	withCause := NewAppError(ErrInputRead, "не удалось прочитать документ", errors.New("оригинальная ошибка"))
	assert.Equal(t, "INPUT.READ_FAILED: не удалось прочитать документ (оригинальная ошибка)", withCause.Error())

	withoutCause := NewAppError(ErrInputRead, "не удалось прочитать документ", nil)
	assert.Equal(t, "INPUT.READ_FAILED: не удалось прочитать документ", withoutCause.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	appErr := NewAppError(ErrInputRead, "не удалось прочитать документ", io.EOF)
	wrapped := fmt.Errorf("команда explain: %w", appErr)

	assert.ErrorIs(t, wrapped, io.EOF)
	var target *AppError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, ErrInputRead, target.Code)
	assert.Equal(t, ErrInputRead, Code(wrapped))
	assert.Equal(t, "", Code(io.EOF))
}

func TestAppError_JSONSerialization(t *testing.T) {
	appErr := NewAppError(ErrInputParse, "документ не разобран", errors.New("секрет")).WithHint("проверьте синтаксис")

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.JSONEq(t, `{"code":"INPUT.PARSE_FAILED","message":"документ не разобран","hint":"проверьте синтаксис"}`, string(data))
	assert.NotContains(t, string(data), "секрет", "Cause не должен сериализоваться")
}

func TestAppError_Explain(t *testing.T) {
	ctx := ufe.NewContext(ufe.WithRegistry(ufe.NewRegistry()))
	appErr := NewAppError(ErrInputRead, "не удалось прочитать документ", io.ErrUnexpectedEOF).
		WithHint("проверьте, что файл записан полностью")

	got := ufe.Explain(appErr, ctx)

	want := ufe.UserFacingError{
		Error: ufe.Cause{
			Summary:        "не удалось прочитать документ",
			ExtendedReason: "проверьте, что файл записан полностью",
		},
		Related: []ufe.UserFacingError{
			{Error: ufe.Cause{Summary: io.ErrUnexpectedEOF.Error()}},
		},
	}
	assert.Equal(t, want, got)
}

func TestAppError_Explain_Verbose(t *testing.T) {
	ctx := ufe.NewContext(ufe.WithRegistry(ufe.NewRegistry()), ufe.WithVerbosity(ufe.VerbosityVerbose))

	got := ufe.Explain(NewAppError(ErrCommandNotFound, "неизвестная команда", nil), ctx)

	assert.Equal(t, "[COMMAND.NOT_FOUND]", got.Error.ExtendedReason)
	assert.Empty(t, got.Related)
}

func TestAppError_Explain_NestedAppErrors(t *testing.T) {
	ctx := ufe.NewContext(ufe.WithRegistry(ufe.NewRegistry()))
	inner := NewAppError(ErrInputSchema, "схема не загружена", io.EOF)
	outer := NewAppError(ErrCommandExec, "проверка не выполнена", inner)

	got := ufe.Explain(outer, ctx)

	assert.Equal(t, 3, got.Count())
	assert.Equal(t, "схема не загружена", got.Related[0].Error.Summary)
	assert.Equal(t, "EOF", got.Related[0].Related[0].Error.Summary)
}
