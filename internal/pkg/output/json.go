package output

import (
	"encoding/json"
	"io"
)

// JSONWriter форматирует Result в JSON.
// Использует encoding/json с отступами для читаемости.
type JSONWriter struct{}

// NewJSONWriter создаёт новый JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write сериализует result в JSON и записывает в w.
func (j *JSONWriter) Write(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(result)
}
