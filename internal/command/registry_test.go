package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHandler struct {
	name string
}

func (m *mockHandler) Name() string                             { return m.name }
func (m *mockHandler) Description() string                      { return "mock " + m.name }
func (m *mockHandler) Execute(_ context.Context, _ *Env) error { return nil }

func TestRegister(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, Register(&mockHandler{name: "explain"}))

	h, ok := Get("explain")
	require.True(t, ok)
	assert.Equal(t, "explain", h.Name())
}

func TestRegister_Errors(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	require.NoError(t, Register(&mockHandler{name: "explain"}))

	tests := []struct {
		name    string
		handler Handler
		wantErr error
	}{
		{"nil", nil, ErrNilHandler},
		{"пустое имя", &mockHandler{}, ErrEmptyName},
		{"camelCase", &mockHandler{name: "dbCheck"}, ErrInvalidName},
		{"двойной дефис", &mockHandler{name: "db--check"}, ErrInvalidName},
		{"цифра в начале", &mockHandler{name: "1check"}, ErrInvalidName},
		{"дубликат", &mockHandler{name: "explain"}, ErrDuplicateHandler},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Register(tt.handler), tt.wantErr)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h, ok := Get("missing")
	assert.False(t, ok)
	assert.Nil(t, h)
}

func TestAllAndNames_Sorted(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	for _, name := range []string{"version", "db-check", "explain"} {
		require.NoError(t, Register(&mockHandler{name: name}))
	}

	assert.Equal(t, []string{"db-check", "explain", "version"}, Names())

	all := All()
	require.Len(t, all, 3)
	assert.Equal(t, "db-check", all[0].Name())
	assert.Equal(t, "version", all[2].Name())
}
