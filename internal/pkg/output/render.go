package output

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Kargones/ufe/internal/pkg/i18n"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Renderer выводит дерево объяснений для терминала.
//
// Корень печатается без отступа, за ним пояснение и подсветка файлов.
// Перед дочерними узлами корня выводится заголовок "Detailed information:",
// дочерние узлы идут в глубину с отступом по уровню вложенности.
type Renderer struct {
	printer *message.Printer

	summary *color.Color
	nested  *color.Color
	heading *color.Color
	gutter  *color.Color
	caret   *color.Color
}

// NewRenderer создаёт Renderer без цвета с английскими надписями.
func NewRenderer() *Renderer {
	r := &Renderer{
		printer: i18n.Printer(language.English),
		summary: color.New(color.FgRed, color.Bold),
		nested:  color.New(color.Bold),
		heading: color.New(color.FgCyan),
		gutter:  color.New(color.FgBlue),
		caret:   color.New(color.FgYellow, color.Bold),
	}
	r.SetColor(false)
	return r
}

// SetColor включает или выключает ANSI-цвета независимо от терминала.
func (r *Renderer) SetColor(enabled bool) {
	for _, c := range []*color.Color{r.summary, r.nested, r.heading, r.gutter, r.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// SetLanguage задаёт язык служебных надписей.
func (r *Renderer) SetLanguage(tag language.Tag) {
	r.printer = i18n.Printer(tag)
}

// Render записывает дерево в w.
func (r *Renderer) Render(w io.Writer, tree ufe.UserFacingError) error {
	var sb strings.Builder
	r.render(&sb, tree, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderString возвращает дерево в виде строки.
func (r *Renderer) RenderString(tree ufe.UserFacingError) string {
	var sb strings.Builder
	r.render(&sb, tree, 0)
	return sb.String()
}

func (r *Renderer) render(sb *strings.Builder, node ufe.UserFacingError, depth int) {
	body := strings.Repeat("  ", depth)
	summary := node.Error.Summary
	if summary == "" {
		summary = r.printer.Sprintf("(no summary)")
	}

	if depth == 0 {
		writeLines(sb, "", body, summary, r.summary)
	} else {
		writeLines(sb, strings.Repeat("  ", depth-1)+"- ", body, summary, r.nested)
	}

	if node.Error.HasExtendedReason() {
		if depth == 0 {
			sb.WriteByte('\n')
		}
		writeLines(sb, body, body, node.Error.ExtendedReason, nil)
	}

	for _, fh := range node.Error.FileHighlights {
		r.renderHighlight(sb, fh, body)
	}

	if len(node.Related) == 0 {
		return
	}
	if depth == 0 {
		sb.WriteString(r.heading.Sprint(r.printer.Sprintf("Detailed information:")))
		sb.WriteByte('\n')
	}
	for _, child := range node.Related {
		r.render(sb, child, depth+1)
	}
}

// renderHighlight выводит файл и метки в стиле компиляторов.
// Колонка в заголовке считается в символах:
//
//	--> config.yaml:2:7
//	  |
//	2 | port: abc
//	  |       ^^^ expected integer
func (r *Renderer) renderHighlight(sb *strings.Builder, fh ufe.FileHighlight, indent string) {
	if fh.Content == "" || len(fh.Labels) == 0 {
		sb.WriteString(indent + r.gutter.Sprint("--> ") + fh.Path + "\n")
		for _, l := range fh.Labels {
			sb.WriteString(indent + "  = " + l.Message + "\n")
		}
		return
	}

	lines := strings.Split(fh.Content, "\n")
	for _, l := range fh.Labels {
		line, column := l.Line(fh.Content)
		text := ""
		if line-1 < len(lines) {
			text = strings.TrimSuffix(lines[line-1], "\r")
		}
		number := strconv.Itoa(line)
		pad := strings.Repeat(" ", len(number))

		before, marked := splitLabel(text, column, l.End-l.Start)
		sb.WriteString(indent + r.gutter.Sprint("--> ") + fh.Path + ":" + number + ":" +
			strconv.Itoa(utf8.RuneCountInString(before)+1) + "\n")
		sb.WriteString(indent + pad + r.gutter.Sprint(" |") + "\n")
		sb.WriteString(indent + r.gutter.Sprint(number+" | ") + text + "\n")

		carets := strings.Repeat("^", max(1, runewidth.StringWidth(marked)))
		underline := strings.Repeat(" ", runewidth.StringWidth(before)) + r.caret.Sprint(carets)
		if l.Message != "" {
			underline += " " + r.caret.Sprint(l.Message)
		}
		sb.WriteString(indent + pad + r.gutter.Sprint(" | ") + underline + "\n")
	}
}

// splitLabel делит строку на часть до метки и помеченную часть.
// column — колонка начала метки (с единицы, в байтах), length — длина метки в байтах.
func splitLabel(text string, column, length int) (before, marked string) {
	start := min(max(column-1, 0), len(text))
	end := min(start+max(length, 0), len(text))
	return text[:start], text[start:end]
}

func writeLines(sb *strings.Builder, first, rest, text string, c *color.Color) {
	for i, line := range strings.Split(text, "\n") {
		prefix := rest
		if i == 0 {
			prefix = first
		}
		if c != nil {
			line = c.Sprint(line)
		}
		sb.WriteString(prefix + line + "\n")
	}
}
