package fsconv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Kargones/ufe/internal/pkg/i18n"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

func newContext(opts ...ufe.Option) *ufe.Context {
	r := ufe.NewRegistry()
	Register(r)
	r.Freeze()
	return ufe.NewContext(append([]ufe.Option{ufe.WithRegistry(r), ufe.WithCatalog(i18n.Catalog())}, opts...)...)
}

func TestRegister(t *testing.T) {
	r := ufe.NewRegistry()
	Register(r)
	assert.Equal(t, []string{"*fs.PathError", "*os.LinkError", "*os.SyscallError"}, r.Names())
}

func TestPathError_NotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := os.ReadFile(path)
	require.Error(t, err)

	got := ufe.Explain(err, newContext())

	assert.Equal(t, "File \""+path+"\" does not exist", got.Error.Summary)
	assert.True(t, got.Error.HasExtendedReason())
	assert.Empty(t, got.Related, "в обычном режиме системная ошибка не раскрывается")
}

func TestPathError_NotExist_Verbose(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	got := ufe.Explain(err, newContext(ufe.WithVerbosity(ufe.VerbosityVerbose)))

	require.Len(t, got.Related, 1)
	assert.Equal(t, "no such file or directory", got.Related[0].Error.Summary)
}

func TestPathError_Russian(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	got := ufe.Explain(err, newContext(ufe.WithLanguage(language.Russian)))

	assert.Contains(t, got.Error.Summary, "не существует")
}

func TestPathError_IsDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := os.ReadFile(dir)
	require.Error(t, err)

	got := ufe.Explain(err, newContext())

	assert.Equal(t, "\""+dir+"\" is a directory", got.Error.Summary)
}

func TestPathError_Unknown(t *testing.T) {
	err := &os.PathError{Op: "sync", Path: "/data", Err: os.ErrDeadlineExceeded}

	got := ufe.Explain(err, newContext())

	assert.Equal(t, "Could not sync \"/data\"", got.Error.Summary)
	require.Len(t, got.Related, 1)
	assert.Equal(t, os.ErrDeadlineExceeded.Error(), got.Related[0].Error.Summary)
}

func TestLinkError(t *testing.T) {
	dir := t.TempDir()
	err := os.Rename(filepath.Join(dir, "a"), filepath.Join(dir, "b"))
	require.Error(t, err)

	got := ufe.Explain(err, newContext())

	assert.Contains(t, got.Error.Summary, "Could not rename")
	require.Len(t, got.Related, 1)
}

func TestSyscallError(t *testing.T) {
	err := os.NewSyscallError("fsync", os.ErrClosed)

	got := ufe.Explain(err, newContext())

	assert.Equal(t, "System call fsync failed", got.Error.Summary)
	require.Len(t, got.Related, 1)
	assert.Equal(t, os.ErrClosed.Error(), got.Related[0].Error.Summary)
}
