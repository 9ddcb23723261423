package document

import (
	"errors"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// LoadSchema загружает и компилирует JSON-схему. Схема может быть записана в JSON или YAML.
// Ошибки возвращаются как *SchemaError; синтаксическая ошибка схемы — *ParseError внутри.
func LoadSchema(path string) (*jsonschema.Schema, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, &SchemaError{Path: path, Err: err}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &SchemaError{Path: path, Err: err}
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(abs, doc.Value); err != nil {
		return nil, &SchemaError{Path: path, Err: err}
	}
	schema, err := c.Compile(abs)
	if err != nil {
		return nil, &SchemaError{Path: path, Err: err}
	}
	return schema, nil
}

// Validate проверяет документ по схеме. Нарушения возвращаются как *ValidationError.
func Validate(doc *Document, schema *jsonschema.Schema) error {
	err := schema.Validate(doc.Value)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return &ValidationError{Doc: doc, Err: verr}
	}
	return err
}
