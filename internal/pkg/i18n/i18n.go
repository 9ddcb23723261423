// Package i18n содержит каталог переводов сообщений для пользователя.
//
// Ключ сообщения — английская форма строки формата. Для английского языка
// каталог пуст: message.Printer использует ключ как формат.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported — языки, для которых есть переводы. Первый — язык по умолчанию.
var Supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(Supported)

var buildCatalog = sync.OnceValue(func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range russian {
		if err := b.SetString(language.Russian, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: invalid message %q: %v", key, err))
		}
	}
	return b
})

// Catalog возвращает каталог переводов процесса.
func Catalog() catalog.Catalog {
	return buildCatalog()
}

// Printer возвращает printer для языка tag с каталогом переводов.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(Catalog()))
}

// Match возвращает ближайший поддерживаемый язык.
func Match(tag language.Tag) language.Tag {
	_, index, _ := matcher.Match(tag)
	return Supported[index]
}

// ParseLanguage разбирает BCP 47 тег ("ru", "ru-RU", "en").
// Пустая строка соответствует английскому языку.
// Неподдерживаемый, но корректный тег приводится к ближайшему поддерживаемому.
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English, fmt.Errorf("i18n: invalid language %q: %w", s, err)
	}
	return Match(tag), nil
}
