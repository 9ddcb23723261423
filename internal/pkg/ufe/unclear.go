package ufe

// Unclear — резервное объяснение для ошибок без конвертера.
type Unclear struct {
	err error
}

// FromError оборачивает произвольную ошибку в резервное объяснение.
func FromError(err error) Unclear {
	return Unclear{err: err}
}

// Err возвращает исходную ошибку.
func (u Unclear) Err() error {
	return u.err
}

// Explain возвращает лист с текстом ошибки в качестве краткого описания.
// Если контекст раскрывает цепочку (WithChainExpansion), непосредственные
// причины ошибки объясняются через Dispatch и становятся дочерними узлами.
func (u Unclear) Explain(ctx *Context) UserFacingError {
	node := Leaf(NewCause().WithSummary(errorText(u.err)))
	if u.err == nil || !ctx.ExpandsChain() {
		return node
	}
	return node.WithRelated(DispatchCauses(u.err, ctx)...)
}
