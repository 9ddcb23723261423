package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// TextWriter форматирует Result в человекочитаемый текст.
// Дерево объяснений выводится через Renderer.
type TextWriter struct {
	renderer *Renderer
}

// NewTextWriter создаёт новый TextWriter. По умолчанию без цвета, на английском.
func NewTextWriter(opts ...Option) *TextWriter {
	t := &TextWriter{renderer: NewRenderer()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Write форматирует result в текст и записывает в w.
func (t *TextWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	// Базовый формат: Command: status
	if _, err := fmt.Fprintf(w, "%s: %s\n", result.Command, result.Status); err != nil {
		return err
	}

	switch {
	case result.Explanation != nil:
		if err := t.renderer.Render(w, *result.Explanation); err != nil {
			return err
		}
	case result.Error != nil:
		if _, err := fmt.Fprintf(w, "Error [%s]: %s\n", result.Error.Code, result.Error.Message); err != nil {
			return err
		}
	}

	// Data — выводим как JSON если не пустое
	if result.Data != nil {
		dataJSON, err := json.MarshalIndent(result.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("не удалось сериализовать Data: %w", err)
		}
		if _, err := fmt.Fprintf(w, "Data: %s\n", dataJSON); err != nil {
			return err
		}
	}
	return nil
}
