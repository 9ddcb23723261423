package ufe

import "errors"

// Тексты служебных листьев.
const (
	CycleSummary = "cycle detected in error chain"
	DepthSummary = "error chain too deep"
)

// Dispatch объясняет err одним шагом диспетчеризации через реестр контекста.
//
// Вызывается конвертерами для объяснения причин их ошибки. Никогда не завершается
// неудачей: при отсутствии подходящего конвертера возвращается резервное объяснение.
func Dispatch(err error, ctx *Context) UserFacingError {
	return ctx.Registry().Dispatch(err, ctx)
}

// Dispatch объясняет err через реестр r. См. пакетную функцию Dispatch.
func (r *Registry) Dispatch(err error, ctx *Context) UserFacingError {
	r.Freeze()
	ctx = ctx.bind(r)

	if err == nil {
		return FromError(nil).Explain(ctx)
	}
	if ctx.visited(err) {
		return CycleLeaf(err)
	}
	if ctx.depth >= ctx.MaxDepth() {
		return DepthLeaf(err)
	}

	child := ctx.descend(err)
	if e, ok := err.(Explainer); ok {
		return e.Explain(child)
	}
	if c, ok := r.Lookup(err); ok {
		return c.convert(err, child)
	}
	return FromError(err).Explain(child)
}

// Explain строит полное объяснение корневой ошибки через реестр контекста.
func Explain(err error, ctx *Context) UserFacingError {
	return ctx.Registry().Explain(err, ctx)
}

// Explain строит полное объяснение корневой ошибки через реестр r.
// Каждый вызов начинает отслеживание циклов заново.
func (r *Registry) Explain(err error, ctx *Context) UserFacingError {
	return r.Dispatch(err, ctx.root(r))
}

// CycleLeaf возвращает лист, заменяющий ошибку, уже встреченную среди предков.
func CycleLeaf(err error) UserFacingError {
	return Leaf(NewCause().
		WithSummary(CycleSummary).
		WithExtendedReason(errorText(err)))
}

// DepthLeaf возвращает лист, заменяющий ошибку за пределом вложенности.
func DepthLeaf(err error) UserFacingError {
	return Leaf(NewCause().
		WithSummary(DepthSummary).
		WithExtendedReason(errorText(err)))
}

// Causes возвращает непосредственные причины err: Unwrap() error либо Unwrap() []error.
func Causes(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		var causes []error
		for _, cause := range e.Unwrap() {
			if cause != nil {
				causes = append(causes, cause)
			}
		}
		return causes
	case interface{ Unwrap() error }:
		if cause := e.Unwrap(); cause != nil {
			return []error{cause}
		}
	}
	return nil
}

// DispatchCauses объясняет все непосредственные причины err.
func DispatchCauses(err error, ctx *Context) []UserFacingError {
	causes := Causes(err)
	if len(causes) == 0 {
		return nil
	}
	related := make([]UserFacingError, 0, len(causes))
	for _, cause := range causes {
		related = append(related, Dispatch(cause, ctx))
	}
	return related
}

// As — типизированная обёртка над errors.As для конвертеров.
func As[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}

func errorText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
