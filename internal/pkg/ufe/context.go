package ufe

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultMaxDepth — предельная вложенность диспетчеризации по умолчанию.
const DefaultMaxDepth = 64

// Verbosity задаёт желаемую подробность объяснений.
type Verbosity int

// Уровни подробности.
const (
	VerbosityQuiet   Verbosity = -1
	VerbosityNormal  Verbosity = 0
	VerbosityVerbose Verbosity = 1
)

// String возвращает имя уровня подробности.
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// ParseVerbosity разбирает имя уровня подробности (регистр не важен).
// Пустая строка соответствует VerbosityNormal.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return VerbosityNormal, nil
	case "quiet":
		return VerbosityQuiet, nil
	case "verbose":
		return VerbosityVerbose, nil
	default:
		return VerbosityNormal, fmt.Errorf("ufe: unknown verbosity %q", s)
	}
}

// Context — непрозрачный набор подсказок, передаваемый каждому преобразованию.
//
// Конвертеры только читают Context. Спуск к дочерней ошибке создаёт новое значение,
// разделяющее настройки вызывающего, поэтому один Context можно использовать
// для многих вызовов Explain, в том числе параллельно.
// nil *Context эквивалентен NewContext().
type Context struct {
	verbosity   Verbosity
	lang        language.Tag
	cat         catalog.Catalog
	expandChain bool
	maxDepth    int
	registry    *Registry

	// Состояние одного вызова Explain.
	trail *trail
	depth int
}

// trail — неизменяемый список предков текущей ошибки.
type trail struct {
	err    error
	parent *trail
}

// Option настраивает Context.
type Option func(*Context)

// WithVerbosity задаёт подробность объяснений.
func WithVerbosity(v Verbosity) Option {
	return func(c *Context) {
		c.verbosity = v
	}
}

// WithLanguage задаёт язык объяснений.
func WithLanguage(tag language.Tag) Option {
	return func(c *Context) {
		c.lang = tag
	}
}

// WithCatalog задаёт каталог переводов для Printer.
func WithCatalog(cat catalog.Catalog) Option {
	return func(c *Context) {
		c.cat = cat
	}
}

// WithChainExpansion включает объяснение причин (Unwrap) в резервном объяснении.
func WithChainExpansion(enabled bool) Option {
	return func(c *Context) {
		c.expandChain = enabled
	}
}

// WithMaxDepth ограничивает вложенность диспетчеризации. Значения <= 0 означают DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(c *Context) {
		c.maxDepth = depth
	}
}

// WithRegistry задаёт реестр, используемый Dispatch. По умолчанию Default().
func WithRegistry(r *Registry) Option {
	return func(c *Context) {
		c.registry = r
	}
}

// NewContext создаёт Context с заданными опциями.
func NewContext(opts ...Option) *Context {
	c := &Context{
		verbosity: VerbosityNormal,
		lang:      language.English,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Verbosity возвращает подробность объяснений.
func (c *Context) Verbosity() Verbosity {
	if c == nil {
		return VerbosityNormal
	}
	return c.verbosity
}

// Verbose сообщает, запрошены ли подробные объяснения.
func (c *Context) Verbose() bool {
	return c.Verbosity() >= VerbosityVerbose
}

// Language возвращает язык объяснений.
func (c *Context) Language() language.Tag {
	if c == nil || c.lang == language.Und {
		return language.English
	}
	return c.lang
}

// Printer возвращает printer для языка контекста.
func (c *Context) Printer() *message.Printer {
	if c == nil || c.cat == nil {
		return message.NewPrinter(c.Language())
	}
	return message.NewPrinter(c.Language(), message.Catalog(c.cat))
}

// ExpandsChain сообщает, раскрывает ли резервное объяснение цепочку причин.
func (c *Context) ExpandsChain() bool {
	return c != nil && c.expandChain
}

// MaxDepth возвращает предельную вложенность диспетчеризации.
func (c *Context) MaxDepth() int {
	if c == nil || c.maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.maxDepth
}

// Depth возвращает текущую вложенность: 0 для корневой ошибки.
func (c *Context) Depth() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// Registry возвращает реестр, используемый Dispatch.
func (c *Context) Registry() *Registry {
	if c == nil || c.registry == nil {
		return Default()
	}
	return c.registry
}

// root возвращает копию без состояния вызова, привязанную к реестру r.
func (c *Context) root(r *Registry) *Context {
	var child Context
	if c == nil {
		child = *NewContext()
	} else {
		child = *c
	}
	child.registry = r
	child.trail = nil
	child.depth = 0
	return &child
}

// bind возвращает контекст, привязанный к реестру r, сохраняя состояние вызова.
func (c *Context) bind(r *Registry) *Context {
	if c != nil && c.registry == r {
		return c
	}
	if c == nil {
		return c.root(r)
	}
	child := *c
	child.registry = r
	return &child
}

// descend возвращает контекст для преобразования err: err становится предком
// для всех ошибок, диспетчеризуемых изнутри конвертера.
func (c *Context) descend(err error) *Context {
	child := *c
	child.depth = c.depth + 1
	if identifiable(err) {
		child.trail = &trail{err: err, parent: c.trail}
	}
	return &child
}

// visited сообщает, является ли err предком в текущей цепочке.
func (c *Context) visited(err error) bool {
	if !identifiable(err) {
		return false
	}
	for t := c.trail; t != nil; t = t.parent {
		if t.err == err {
			return true
		}
	}
	return false
}

// identifiable сообщает, можно ли сравнить err через ==.
// Для значений с несравнимыми полями (срезы, map) идентичность не отслеживается,
// от бесконечной рекурсии защищает ограничение глубины.
func identifiable(err error) bool {
	return err != nil && reflect.ValueOf(err).Comparable()
}
