package logging

import (
	"log/slog"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// maxLoggedCauses ограничивает число листьев дерева в записи лога.
const maxLoggedCauses = 5

// Explanation возвращает атрибут лога с краткой сводкой дерева объяснений:
// корневое описание, число узлов, глубина и описания первых листьев.
//
//	logger.Warn("документ не прошёл проверку", logging.Explanation(tree))
func Explanation(tree ufe.UserFacingError) slog.Attr {
	return slog.Any("explanation", explanationValue(tree))
}

type explanationValue ufe.UserFacingError

// LogValue реализует slog.LogValuer: дерево раскрывается только при записи.
func (e explanationValue) LogValue() slog.Value {
	tree := ufe.UserFacingError(e)

	var leaves []string
	tree.Walk(func(node ufe.UserFacingError, depth int) bool {
		if depth > 0 && len(node.Related) == 0 && len(leaves) < maxLoggedCauses {
			leaves = append(leaves, node.Error.Summary)
		}
		return true
	})

	attrs := []slog.Attr{
		slog.String("summary", tree.Error.Summary),
		slog.Int("nodes", tree.Count()),
		slog.Int("depth", tree.Depth()),
	}
	if len(leaves) > 0 {
		attrs = append(attrs, slog.Any("causes", leaves))
	}
	return slog.GroupValue(attrs...)
}
