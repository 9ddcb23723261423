package help

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/ufe/internal/command"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/pkg/logging"
	"github.com/Kargones/ufe/internal/pkg/output"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

type stubHandler struct {
	name, description string
}

func (h *stubHandler) Name() string                                     { return h.name }
func (h *stubHandler) Description() string                              { return h.description }
func (h *stubHandler) Execute(context.Context, *command.Env) error { return nil }

func setupRegistry(t *testing.T) {
	t.Helper()
	command.Reset()
	t.Cleanup(command.Reset)
	require.NoError(t, RegisterCmd())
	require.NoError(t, command.Register(&stubHandler{name: "db-check", description: "Проверка подключения"}))
}

func newEnv(format string) (*command.Env, *bytes.Buffer) {
	var buf bytes.Buffer
	return &command.Env{
		Logger:  logging.NewNopLogger(),
		Writer:  output.NewWriter(format),
		Stdout:  &buf,
		Explain: ufe.NewContext(),
		Start:   time.Now(),
	}, &buf
}

func TestHelpHandler_Name(t *testing.T) {
	h := &Handler{}
	assert.Equal(t, "help", h.Name())
	assert.Equal(t, constants.ActHelp, h.Name())
	assert.Equal(t, "Вывод списка доступных команд", h.Description())
}

func TestHelpHandler_Execute_TextOutput(t *testing.T) {
	setupRegistry(t)
	env, buf := newEnv(output.FormatText)

	require.NoError(t, (&Handler{}).Execute(context.Background(), env))
	out := buf.String()

	assert.Contains(t, out, "ufe — объяснение ошибок для пользователя")
	assert.Contains(t, out, "Команды:")
	assert.Contains(t, out, "  db-check  Проверка подключения\n")
	assert.Contains(t, out, "  help      Вывод списка доступных команд\n")
	assert.Contains(t, out, "UFE_OUTPUT_FORMAT=json")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("db-check")), bytes.Index(buf.Bytes(), []byte("  help")),
		"команды отсортированы по имени")
}

func TestHelpHandler_Execute_JSONOutput(t *testing.T) {
	setupRegistry(t)
	env, buf := newEnv(output.FormatJSON)

	require.NoError(t, (&Handler{}).Execute(context.Background(), env))

	var result struct {
		Status  string `json:"status"`
		Command string `json:"command"`
		Data    Data   `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, output.StatusSuccess, result.Status)
	assert.Equal(t, constants.ActHelp, result.Command)
	assert.Equal(t, []CommandInfo{
		{Name: "db-check", Description: "Проверка подключения"},
		{Name: "help", Description: "Вывод списка доступных команд"},
	}, result.Data.Commands)
	assert.Equal(t, options, result.Data.Options)
}

func TestBuildData_EmptyRegistry(t *testing.T) {
	command.Reset()
	t.Cleanup(command.Reset)

	data := buildData()
	assert.Empty(t, data.Commands)
	assert.NotEmpty(t, data.Options)
}
