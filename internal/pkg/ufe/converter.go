package ufe

import "reflect"

// Explainer — способность ошибки объяснить саму себя.
//
// Explain не может завершиться неудачей. Причины ошибки объясняются явным вызовом
// Dispatch с переданным контекстом:
//
//	func (e *ReadError) Explain(ctx *ufe.Context) ufe.UserFacingError {
//	    return ufe.Leaf(ufe.NewCause().WithSummary("Could not read the file")).
//	        WithRelated(ufe.Dispatch(e.Err, ctx))
//	}
type Explainer interface {
	Explain(ctx *Context) UserFacingError
}

// MatchFunc решает, применим ли конвертер к ошибке.
type MatchFunc func(err error) bool

// ConvertFunc строит объяснение ошибки. Вызывается только для ошибок,
// для которых MatchFunc вернул true.
type ConvertFunc func(err error, ctx *Context) UserFacingError

// Converter — элемент реестра. Неизменяем после создания.
//
// Связанный конвертер (ForType, For) применим только к ошибкам ровно своего
// динамического типа: обёртки и производные типы не подходят.
// Пользовательский конвертер (Custom) решает сам через предикат.
type Converter struct {
	name    string
	typ     reflect.Type
	match   MatchFunc
	convert ConvertFunc
}

// ForType создаёт связанный конвертер для типа T, реализующего Explainer.
func ForType[T interface {
	error
	Explainer
}]() Converter {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return Converter{
		name: typ.String(),
		typ:  typ,
		match: func(err error) bool {
			_, ok := err.(T)
			return ok
		},
		convert: func(err error, ctx *Context) UserFacingError {
			return err.(T).Explain(ctx)
		},
	}
}

// For создаёт связанный конвертер для типа T, не реализующего Explainer,
// например для ошибок сторонних библиотек.
//
// Паникует, если fn == nil.
func For[T error](fn func(err T, ctx *Context) UserFacingError) Converter {
	if fn == nil {
		panic("ufe: nil convert function")
	}
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return Converter{
		name: typ.String(),
		typ:  typ,
		match: func(err error) bool {
			_, ok := err.(T)
			return ok
		},
		convert: func(err error, ctx *Context) UserFacingError {
			return fn(err.(T), ctx)
		},
	}
}

// Custom создаёт пользовательский конвертер с произвольным предикатом.
//
// Паникует, если name пустое или одна из функций nil.
func Custom(name string, match MatchFunc, convert ConvertFunc) Converter {
	if name == "" {
		panic("ufe: empty converter name")
	}
	if match == nil || convert == nil {
		panic("ufe: nil converter function for " + name)
	}
	return Converter{name: name, match: match, convert: convert}
}

// Name возвращает имя конвертера. Для связанных — имя типа.
func (c Converter) Name() string {
	return c.name
}

// Type возвращает тип, к которому привязан конвертер, или nil для Custom.
func (c Converter) Type() reflect.Type {
	return c.typ
}

// IsBound сообщает, привязан ли конвертер к конкретному типу.
func (c Converter) IsBound() bool {
	return c.typ != nil
}

// Match сообщает, применим ли конвертер к err.
func (c Converter) Match(err error) bool {
	return c.match != nil && c.match(err)
}

func (c Converter) valid() bool {
	return c.match != nil && c.convert != nil
}
