// Package document загружает проверяемые документы YAML и JSON и объясняет
// ошибки их разбора и валидации с подсветкой мест в исходном тексте.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Форматы документов.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Document — разобранный документ вместе с исходным текстом.
type Document struct {
	Path    string
	Format  string
	Content string

	// Value — значение в представлении jsonschema: nil, bool, json.Number,
	// string, []any, map[string]any.
	Value any

	root  *yaml.Node
	lines []int
}

// FormatOf определяет формат по расширению файла. Всё, кроме .json, считается YAML.
func FormatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load читает и разбирает документ. Ошибка чтения возвращается как есть,
// ошибка синтаксиса — как *ParseError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // путь задаёт пользователь
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse разбирает data как документ path.
func Parse(path string, data []byte) (*Document, error) {
	doc := &Document{
		Path:    path,
		Format:  FormatOf(path),
		Content: string(data),
	}
	doc.lines = lineStarts(doc.Content)

	if doc.Format == FormatJSON {
		value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, doc.parseError(err)
		}
		doc.Value = value
		// Позиции берутся из yaml.Node: JSON — подмножество YAML.
		var root yaml.Node
		if yaml.Unmarshal(data, &root) == nil {
			doc.root = &root
		}
		return doc, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, doc.parseError(err)
	}
	value, err := nodeValue(&root)
	if err != nil {
		return nil, doc.parseError(err)
	}
	doc.root = &root
	doc.Value = value
	return doc, nil
}

// nodeError — ошибка преобразования скаляра с позицией узла.
type nodeError struct {
	Line int
	Err  error
}

func (e *nodeError) Error() string { return e.Err.Error() }

func (e *nodeError) Unwrap() error { return e.Err }

var yamlLine = regexp.MustCompile(`^yaml: line (\d+): `)

func (d *Document) parseError(err error) *ParseError {
	pe := &ParseError{Path: d.Path, Content: d.Content, Err: err}

	var (
		syntax *json.SyntaxError
		node   *nodeError
	)
	switch {
	case errors.As(err, &node):
		pe.Line = node.Line
		pe.Err = node.Err
	case errors.As(err, &syntax):
		pe.Line = d.lineOf(int(syntax.Offset))
	default:
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			pe.Line, _ = strconv.Atoi(m[1]) //nolint:errcheck // \d+
		}
	}
	return pe
}

// lineStarts возвращает байтовые смещения начала каждой строки.
func lineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineOf возвращает номер строки (с единицы) для байтового смещения.
func (d *Document) lineOf(offset int) int {
	line := 1
	for i, start := range d.lines {
		if start > offset {
			break
		}
		line = i + 1
	}
	return line
}

// lineBounds возвращает байтовые границы строки line (с единицы) без перевода строки.
func (d *Document) lineBounds(line int) (start, end int) {
	if line < 1 || line > len(d.lines) {
		return 0, 0
	}
	start = d.lines[line-1]
	end = len(d.Content)
	if line < len(d.lines) {
		end = d.lines[line] - 1
	}
	end = start + len(strings.TrimRight(d.Content[start:end], " \t\r"))
	return start, end
}

// nodeValue переводит yaml.Node в значение jsonschema.
// Числа представляются json.Number, чтобы валидация не теряла точность.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	case yaml.ScalarNode:
		return scalarValue(n)
	default:
		return nil, nil
	}
}

func scalarValue(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &nodeError{Line: n.Line, Err: err}
		}
		return b, nil
	case "!!int":
		var i int64
		err := n.Decode(&i)
		if err == nil {
			return json.Number(strconv.FormatInt(i, 10)), nil
		}
		var u uint64
		if n.Decode(&u) == nil {
			return json.Number(strconv.FormatUint(u, 10)), nil
		}
		if b, ok := new(big.Int).SetString(strings.ReplaceAll(n.Value, "_", ""), 0); ok {
			return json.Number(b.String()), nil
		}
		return nil, &nodeError{Line: n.Line, Err: err}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, &nodeError{Line: n.Line, Err: err}
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return f, nil
		}
		return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return n.Value, nil
	}
}
