package converters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
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

type sampleError struct{}

func (sampleError) Error() string { return "sample" }

func (sampleError) Explain(*ufe.Context) ufe.UserFacingError {
	return ufe.Leaf(ufe.NewCause().WithSummary("sample"))
}

func newRegistry() *ufe.Registry {
	r := ufe.NewRegistry()
	r.Register(
		ufe.ForType[sampleError](),
		ufe.Custom("deadline", func(err error) bool {
			return errors.Is(err, context.DeadlineExceeded)
		}, func(err error, _ *ufe.Context) ufe.UserFacingError {
			return ufe.Leaf(ufe.NewCause().WithSummary("timeout"))
		}),
	)
	r.Freeze()
	return r
}

func newEnv(format string) (*command.Env, *bytes.Buffer) {
	var buf bytes.Buffer
	return &command.Env{
		Logger:  logging.NewNopLogger(),
		Writer:  output.NewWriter(format),
		Stdout:  &buf,
		Explain: ufe.NewContext(ufe.WithRegistry(newRegistry())),
		Start:   time.Now(),
	}, &buf
}

func TestHandler_Name(t *testing.T) {
	assert.Equal(t, constants.ActConverters, (&Handler{}).Name())
}

func TestExecute_Table(t *testing.T) {
	env, buf := newEnv(output.FormatText)
	require.NoError(t, (&Handler{}).Execute(context.Background(), env))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"#", "NAME", "MODE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "converters.sampleError", "bound"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "deadline", "custom"}, strings.Fields(lines[2]))
}

func TestExecute_JSON(t *testing.T) {
	env, buf := newEnv(output.FormatJSON)
	require.NoError(t, (&Handler{}).Execute(context.Background(), env))

	var result struct {
		Status string `json:"status"`
		Data   Data   `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, output.StatusSuccess, result.Status)
	assert.True(t, result.Data.Frozen)
	assert.Equal(t, []Info{
		{Index: 1, Name: "converters.sampleError", Mode: ModeBound},
		{Index: 2, Name: "deadline", Mode: ModeCustom},
	}, result.Data.Converters)
}

func TestBuildData_Empty(t *testing.T) {
	data := buildData(ufe.NewRegistry())
	assert.False(t, data.Frozen)
	assert.NotNil(t, data.Converters)
	assert.Empty(t, data.Converters)
}
