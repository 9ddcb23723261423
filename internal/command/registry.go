package command

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Ошибки регистрации обработчиков.
var (
	ErrNilHandler       = errors.New("command: nil handler")
	ErrEmptyName        = errors.New("command: empty handler name")
	ErrInvalidName      = errors.New("command: invalid handler name format (must be kebab-case)")
	ErrDuplicateHandler = errors.New("command: duplicate handler registration")
)

var (
	registry = make(map[string]Handler)
	mu       sync.RWMutex

	// commandNamePattern — strict kebab-case: буквы a-z, цифры, одиночные дефисы,
	// начинается с буквы.
	commandNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
)

// Register регистрирует обработчик команды в глобальном реестре.
// Вызывается из RegisterCmd() пакетов-обработчиков.
func Register(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	name := h.Name()
	if name == "" {
		return ErrEmptyName
	}
	if !commandNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %s", ErrInvalidName, name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("%w for %s", ErrDuplicateHandler, name)
	}
	registry[name] = h
	return nil
}

// Get возвращает обработчик команды по имени.
func Get(name string) (Handler, bool) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := registry[name]
	return h, ok
}

// All возвращает зарегистрированные обработчики, отсортированные по имени.
func All() []Handler {
	mu.RLock()
	defer mu.RUnlock()
	result := make([]Handler, 0, len(registry))
	for _, h := range registry {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// Names возвращает отсортированный список имён зарегистрированных команд.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset очищает реестр. Используется только в тестах.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Handler)
}
