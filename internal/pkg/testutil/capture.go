// Package testutil содержит общие утилиты для тестирования.
package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout выполняет fn, перехватывая stdout, и возвращает вывод.
// Pipe читается параллельно, поэтому объём вывода не ограничен буфером pipe.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err, "не удалось создать pipe для stdout")

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r) //nolint:errcheck // ошибка чтения видна по пустому выводу
		done <- buf.String()
	}()

	oldStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	fn()

	require.NoError(t, w.Close())
	out := <-done
	require.NoError(t, r.Close())
	return out
}

// WriteFile создаёт файл name во временном каталоге теста и возвращает его путь.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ClearEnv снимает все переменные окружения с префиксом prefix на время теста.
// Пустое значение cleanenv считает заданным, поэтому переменные удаляются.
func ClearEnv(t *testing.T, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, prefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}
