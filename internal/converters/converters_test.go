package converters

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

func TestRegisterAll(t *testing.T) {
	r := ufe.NewRegistry()
	RegisterAll(r)

	assert.Equal(t, []string{
		"*fs.PathError",
		"*os.LinkError",
		"*os.SyscallError",
		"*url.Error",
		"*net.OpError",
		"*net.DNSError",
		"context",
		"*json.SyntaxError",
		"*json.UnmarshalTypeError",
		"*yaml.TypeError",
		"*jsonschema.ValidationError",
		"database/sql",
		"mssql.Error",
	}, r.Names())
}

func TestRegisterAll_ChainedExplanation(t *testing.T) {
	r := ufe.NewRegistry()
	RegisterAll(r)
	r.Freeze()

	pathErr := &fs.PathError{Op: "open", Path: "app.yaml", Err: fs.ErrNotExist}
	err := fmt.Errorf("load settings: %w", pathErr)

	got := ufe.Explain(err, ufe.NewContext(ufe.WithRegistry(r), ufe.WithChainExpansion(true)))

	assert.Equal(t, err.Error(), got.Error.Summary)
	require.Len(t, got.Related, 1)
	assert.Equal(t, `File "app.yaml" does not exist`, got.Related[0].Error.Summary)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
