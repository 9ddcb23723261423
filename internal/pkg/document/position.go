package document

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Offset возвращает байтовый диапазон значения по JSON Pointer ("/a/0/b").
// Если путь не найден целиком, возвращается диапазон ближайшего найденного предка.
func (d *Document) Offset(pointer string) (start, end int) {
	return d.Span(splitPointer(pointer))
}

// Span возвращает байтовый диапазон значения по пути из токенов.
//
// Скалярное значение подсвечивается целиком, вложенный блок — по ключу,
// под которым он записан, или по первой строке.
func (d *Document) Span(location []string) (start, end int) {
	if d.root == nil {
		return d.lineBounds(1)
	}
	node, key := locate(d.root, location)
	target := node
	if key != nil && (node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode) && node.Style&yaml.FlowStyle == 0 {
		target = key
	}
	return d.nodeSpan(target)
}

func splitPointer(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return nil
	}
	tokens := strings.Split(pointer, "/")
	for i, t := range tokens {
		t = strings.ReplaceAll(t, "~1", "/")
		tokens[i] = strings.ReplaceAll(t, "~0", "~")
	}
	return tokens
}

// locate спускается по location, пока находятся токены.
// key — узел ключа, под которым записан найденный узел (nil для корня и элементов списков).
func locate(root *yaml.Node, location []string) (node, key *yaml.Node) {
	node = root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	for _, token := range location {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
		}
		next, nextKey := child(node, token)
		if next == nil {
			break
		}
		node, key = next, nextKey
	}
	return node, key
}

func child(n *yaml.Node, token string) (node, key *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == token {
				return n.Content[i+1], n.Content[i]
			}
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			if token == strconv.Itoa(i) {
				return c, nil
			}
		}
	}
	return nil, nil
}

// nodeSpan переводит позицию узла (строка и колонка в символах) в байтовый диапазон.
func (d *Document) nodeSpan(n *yaml.Node) (start, end int) {
	if n.Line < 1 {
		return d.lineBounds(1)
	}
	lineStart, lineEnd := d.lineBounds(n.Line)

	start = lineStart
	text := d.Content[lineStart:lineEnd]
	col := 1
	for i := range text {
		if col == n.Column {
			start = lineStart + i
			break
		}
		col++
	}
	if col < n.Column {
		start = lineEnd
	}

	end = lineEnd
	if n.Kind == yaml.ScalarNode {
		if length := scalarLength(d.Content[start:lineEnd], n); length > 0 {
			end = start + length
		}
	}
	return start, end
}

// scalarLength возвращает длину скаляра в исходном тексте, если он записан в одну строку.
func scalarLength(rest string, n *yaml.Node) int {
	switch {
	case n.Style&yaml.DoubleQuotedStyle != 0:
		for i := 1; i < len(rest); i++ {
			switch rest[i] {
			case '\\':
				i++
			case '"':
				return i + 1
			}
		}
	case n.Style&yaml.SingleQuotedStyle != 0:
		for i := 1; i < len(rest); i++ {
			if rest[i] != '\'' {
				continue
			}
			if i+1 < len(rest) && rest[i+1] == '\'' {
				i++
				continue
			}
			return i + 1
		}
	case n.Style == 0 && !strings.Contains(n.Value, "\n") && strings.HasPrefix(rest, n.Value):
		return len(n.Value)
	}
	return 0
}
