package ufe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCause_Setters(t *testing.T) {
	base := NewCause()
	assert.Equal(t, Cause{}, base, "NewCause должен быть эквивалентен нулевому значению")

	c := base.WithSummary("Could not read the frobnicate")
	assert.Equal(t, "", base.Summary, "setter не должен менять исходное значение")
	assert.Equal(t, "Could not read the frobnicate", c.Summary)
	assert.False(t, c.HasExtendedReason())

	c2 := c.WithExtendedReason("ensure the frub is available")
	assert.False(t, c.HasExtendedReason())
	assert.True(t, c2.HasExtendedReason())
	assert.Equal(t, "ensure the frub is available", c2.ExtendedReason)
}

func TestCause_WithFileHighlight_CopiesSlice(t *testing.T) {
	first := NewCause().WithSummary("bad").WithFileHighlight(NewFileHighlight("a.yaml", "x"))
	second := first.WithFileHighlight(NewFileHighlight("b.yaml", "y"))
	third := first.WithFileHighlight(NewFileHighlight("c.yaml", "z"))

	assert.Len(t, first.FileHighlights, 1)
	assert.Equal(t, "b.yaml", second.FileHighlights[1].Path)
	assert.Equal(t, "c.yaml", third.FileHighlights[1].Path)
}

func TestCause_Validate(t *testing.T) {
	assert.ErrorIs(t, NewCause().Validate(), ErrEmptySummary)
	assert.NoError(t, NewCause().WithSummary("x").Validate())
}

func TestFileHighlight_WithLabel(t *testing.T) {
	h := NewFileHighlight("cfg.yaml", "name: 1\nport: abc\n")
	labeled := h.WithLabel(14, 17, "expected integer")

	assert.Empty(t, h.Labels)
	assert.Equal(t, []FileLabel{{Start: 14, End: 17, Message: "expected integer"}}, labeled.Labels)
}

func TestFileLabel_Line(t *testing.T) {
	content := "name: 1\nport: abc\n"
	tests := []struct {
		name       string
		start      int
		wantLine   int
		wantColumn int
	}{
		{"начало файла", 0, 1, 1},
		{"середина первой строки", 6, 1, 7},
		{"вторая строка", 14, 2, 7},
		{"отрицательное смещение", -3, 1, 1},
		{"за концом файла", 1000, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, column := FileLabel{Start: tt.start}.Line(content)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}
