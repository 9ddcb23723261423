package ufe

// UserFacingError — узел дерева объяснений.
//
// Related упорядочен: при выводе дочерние узлы обходятся в глубину в том же порядке.
// Дерево строится снизу вверх из готовых поддеревьев и потому не содержит циклов.
type UserFacingError struct {
	Error   Cause             `json:"error"`
	Related []UserFacingError `json:"related,omitempty"`
}

// Leaf создаёт узел без дочерних элементов.
func Leaf(cause Cause) UserFacingError {
	return UserFacingError{Error: cause}
}

// WithRelated возвращает копию узла с добавленными дочерними узлами.
func (u UserFacingError) WithRelated(related ...UserFacingError) UserFacingError {
	if len(related) == 0 {
		return u
	}
	children := make([]UserFacingError, 0, len(u.Related)+len(related))
	children = append(children, u.Related...)
	u.Related = append(children, related...)
	return u
}

// Walk обходит дерево в глубину, начиная с корня (depth = 0).
// Если fn возвращает false, дочерние узлы текущего узла пропускаются.
func (u UserFacingError) Walk(fn func(node UserFacingError, depth int) bool) {
	u.walk(fn, 0)
}

func (u UserFacingError) walk(fn func(node UserFacingError, depth int) bool, depth int) {
	if !fn(u, depth) {
		return
	}
	for _, child := range u.Related {
		child.walk(fn, depth+1)
	}
}

// Count возвращает число узлов дерева, включая корень.
func (u UserFacingError) Count() int {
	n := 0
	u.Walk(func(UserFacingError, int) bool {
		n++
		return true
	})
	return n
}

// Depth возвращает глубину дерева. Лист имеет глубину 1.
func (u UserFacingError) Depth() int {
	maxDepth := 0
	u.Walk(func(_ UserFacingError, depth int) bool {
		if depth+1 > maxDepth {
			maxDepth = depth + 1
		}
		return true
	})
	return maxDepth
}
