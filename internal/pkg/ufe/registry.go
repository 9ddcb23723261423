package ufe

import (
	"sync"
	"sync/atomic"
)

// Registry — упорядоченный набор конвертеров с двумя фазами жизни.
//
// В фазе регистрации Register добавляет конвертеры под мьютексом.
// Freeze (или первый Lookup/Dispatch/Explain) переводит реестр в замороженное
// состояние: дальнейший Register паникует, чтение идёт без блокировок.
type Registry struct {
	mu         sync.Mutex
	converters []Converter
	frozen     atomic.Bool
	once       sync.Once
}

// NewRegistry создаёт пустой реестр в фазе регистрации.
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// Default возвращает общий реестр процесса.
func Default() *Registry {
	return defaultRegistry
}

// Register добавляет конвертеры в общий реестр процесса.
func Register(converters ...Converter) {
	defaultRegistry.Register(converters...)
}

// Freeze замораживает общий реестр процесса.
func Freeze() {
	defaultRegistry.Freeze()
}

// Register добавляет конвертеры в конец реестра.
// При поиске побеждает первый подходящий в порядке регистрации.
//
// Паникует если:
//   - реестр уже заморожен (programming error)
//   - конвертер создан не через ForType/For/Custom (programming error)
func (r *Registry) Register(converters ...Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		panic("ufe: register after freeze")
	}
	for _, c := range converters {
		if !c.valid() {
			panic("ufe: zero converter")
		}
	}
	r.converters = append(r.converters, converters...)
}

// Freeze завершает фазу регистрации. Повторные вызовы ничего не делают.
func (r *Registry) Freeze() {
	r.once.Do(func() {
		r.mu.Lock()
		r.frozen.Store(true)
		r.mu.Unlock()
	})
}

// Frozen сообщает, заморожен ли реестр.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// Len возвращает число зарегистрированных конвертеров.
func (r *Registry) Len() int {
	if r.frozen.Load() {
		return len(r.converters)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.converters)
}

// Converters возвращает копию списка конвертеров в порядке регистрации.
func (r *Registry) Converters() []Converter {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	result := make([]Converter, len(r.converters))
	copy(result, r.converters)
	return result
}

// Names возвращает имена конвертеров в порядке регистрации.
func (r *Registry) Names() []string {
	converters := r.Converters()
	names := make([]string, len(converters))
	for i, c := range converters {
		names[i] = c.Name()
	}
	return names
}

// Lookup возвращает первый конвертер, применимый к err. Замораживает реестр.
func (r *Registry) Lookup(err error) (Converter, bool) {
	r.Freeze()
	for _, c := range r.converters {
		if c.Match(err) {
			return c, true
		}
	}
	return Converter{}, false
}
