// Package encodingconv объясняет ошибки разбора JSON и YAML.
package encodingconv

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Register добавляет конвертеры пакета в реестр.
func Register(r *ufe.Registry) {
	r.Register(
		ufe.For(explainJSONSyntax),
		ufe.For(explainJSONType),
		ufe.For(explainYAMLType),
	)
}

func explainJSONSyntax(err *json.SyntaxError, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	return ufe.Leaf(ufe.NewCause().
		WithSummary(p.Sprintf("Invalid JSON at byte %s", strconv.FormatInt(err.Offset, 10))).
		WithExtendedReason(err.Error()))
}

func explainJSONType(err *json.UnmarshalTypeError, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	want := "?"
	if err.Type != nil {
		want = err.Type.String()
	}

	cause := ufe.NewCause()
	if err.Field != "" {
		cause = cause.WithSummary(p.Sprintf("Field %q has the wrong type", err.Field))
	} else {
		cause = cause.WithSummary(p.Sprintf("Value has the wrong type"))
	}
	return ufe.Leaf(cause.WithExtendedReason(p.Sprintf("Expected %s, got JSON %s.", want, err.Value)))
}

func explainYAMLType(err *yaml.TypeError, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	node := ufe.Leaf(ufe.NewCause().
		WithSummary(p.Sprintf("The YAML document does not match the expected structure")))

	related := make([]ufe.UserFacingError, 0, len(err.Errors))
	for _, msg := range err.Errors {
		related = append(related, ufe.Leaf(ufe.NewCause().WithSummary(msg)))
	}
	return node.WithRelated(related...)
}
