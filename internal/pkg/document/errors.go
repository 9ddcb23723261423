package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Kargones/ufe/internal/converters/schemaconv"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// ParseError — синтаксическая ошибка документа.
type ParseError struct {
	Path    string
	Content string

	// Line — строка ошибки (с единицы), 0 если неизвестна.
	Line int

	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("document: parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("document: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Explain подсвечивает строку с ошибкой и объясняет исходную ошибку разбора.
func (e *ParseError) Explain(ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	cause := ufe.NewCause().WithSummary(p.Sprintf("Could not parse %s", e.Path))

	hint := p.Sprintf("Fix the syntax and run the check again.")
	if e.Line > 0 {
		cause = cause.WithExtendedReason(p.Sprintf("Syntax error on line %s", strconv.Itoa(e.Line)) + "\n" + hint)
		doc := &Document{Path: e.Path, Content: e.Content, lines: lineStarts(e.Content)}
		start, end := doc.lineBounds(e.Line)
		cause = cause.WithFileHighlight(ufe.NewFileHighlight(e.Path, e.Content).
			WithLabel(start, end, parseMessage(e.Err)))
	} else {
		cause = cause.WithExtendedReason(hint)
	}

	return ufe.Leaf(cause).WithRelated(ufe.Dispatch(e.Err, ctx))
}

// parseMessage убирает из сообщения yaml.v3 префикс с номером строки.
func parseMessage(err error) string {
	msg := err.Error()
	if m := yamlLine.FindStringSubmatch(msg); m != nil {
		return strings.TrimPrefix(msg, m[0])
	}
	return msg
}

// ValidationError — документ не соответствует JSON-схеме.
type ValidationError struct {
	Doc *Document
	Err *jsonschema.ValidationError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document: %s: %v", e.Doc.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Explain подсвечивает в документе каждое нарушение схемы;
// дерево нарушений объясняется конвертером schemaconv.
func (e *ValidationError) Explain(ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()

	highlight := ufe.NewFileHighlight(e.Doc.Path, e.Doc.Content)
	for _, leaf := range schemaconv.Leaves(e.Err) {
		start, end := e.Doc.Span(leaf.InstanceLocation)
		highlight = highlight.WithLabel(start, end, leaf.ErrorKind.LocalizedString(p))
	}

	cause := ufe.NewCause().
		WithSummary(p.Sprintf("Document %s is invalid", e.Doc.Path)).
		WithFileHighlight(highlight)
	return ufe.Leaf(cause).WithRelated(ufe.Dispatch(e.Err, ctx))
}

// SchemaError — схему не удалось загрузить или скомпилировать.
type SchemaError struct {
	Path string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("document: schema %s: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func (e *SchemaError) Explain(ctx *ufe.Context) ufe.UserFacingError {
	return ufe.Leaf(ufe.NewCause().
		WithSummary(ctx.Printer().Sprintf("Could not load the schema %s", e.Path))).
		WithRelated(ufe.Dispatch(e.Err, ctx))
}
