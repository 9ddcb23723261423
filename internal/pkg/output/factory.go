package output

import (
	"strings"

	"golang.org/x/text/language"
)

// FormatJSON и FormatText — поддерживаемые форматы вывода.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Option настраивает текстовый вывод. JSONWriter опции игнорирует.
type Option func(*TextWriter)

// WithColor включает или выключает цветной вывод.
func WithColor(enabled bool) Option {
	return func(t *TextWriter) {
		t.renderer.SetColor(enabled)
	}
}

// WithLanguage задаёт язык служебных надписей текстового вывода.
func WithLanguage(tag language.Tag) Option {
	return func(t *TextWriter) {
		t.renderer.SetLanguage(tag)
	}
}

// NewWriter создаёт Writer по указанному формату.
// Поддерживаемые форматы: "json", "text" (case-insensitive).
// При неизвестном формате возвращает TextWriter (default).
func NewWriter(format string, opts ...Option) Writer {
	switch strings.ToLower(format) {
	case FormatJSON:
		return NewJSONWriter()
	default:
		return NewTextWriter(opts...)
	}
}
