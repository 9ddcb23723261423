// Package schemaconv объясняет ошибки валидации JSON Schema.
//
// Каждая причина *jsonschema.ValidationError становится дочерним узлом,
// сообщения ключевых слов локализуются printer'ом контекста.
package schemaconv

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Register добавляет конвертер пакета в реестр.
func Register(r *ufe.Registry) {
	r.Register(ufe.For(explainValidationError))
}

func explainValidationError(err *jsonschema.ValidationError, ctx *ufe.Context) ufe.UserFacingError {
	// Ссылка ($ref) с единственной причиной ничего не добавляет к объяснению.
	if _, ok := err.ErrorKind.(*kind.Reference); ok && len(err.Causes) == 1 {
		return ufe.Dispatch(err.Causes[0], ctx)
	}

	p := ctx.Printer()
	cause := ufe.NewCause()
	if _, ok := err.ErrorKind.(*kind.Schema); ok {
		cause = cause.WithSummary(p.Sprintf("The document does not match the schema"))
		if ctx.Verbose() {
			cause = cause.WithExtendedReason(err.ErrorKind.LocalizedString(p))
		}
	} else {
		cause = cause.WithSummary(p.Sprintf("At %s: %s", Pointer(err.InstanceLocation), err.ErrorKind.LocalizedString(p)))
		if ctx.Verbose() {
			cause = cause.WithExtendedReason(p.Sprintf("Schema keyword: %s", keywordLocation(err)))
		}
	}

	related := make([]ufe.UserFacingError, 0, len(err.Causes))
	for _, c := range err.Causes {
		related = append(related, ufe.Dispatch(c, ctx))
	}
	return ufe.Leaf(cause).WithRelated(related...)
}

// Pointer форматирует путь в документе как JSON Pointer (RFC 6901).
func Pointer(location []string) string {
	if len(location) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, token := range location {
		sb.WriteByte('/')
		token = strings.ReplaceAll(token, "~", "~0")
		sb.WriteString(strings.ReplaceAll(token, "/", "~1"))
	}
	return sb.String()
}

func keywordLocation(err *jsonschema.ValidationError) string {
	path := err.ErrorKind.KeywordPath()
	if len(path) == 0 {
		return err.SchemaURL
	}
	return err.SchemaURL + "/" + strings.Join(path, "/")
}

// Leaves возвращает ошибки валидации без причин: конкретные нарушения.
func Leaves(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var leaves []*jsonschema.ValidationError
	for _, c := range err.Causes {
		leaves = append(leaves, Leaves(c)...)
	}
	return leaves
}
