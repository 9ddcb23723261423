package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/Kargones/ufe/internal/pkg/i18n"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// ExplainConfig содержит настройки построения объяснений.
type ExplainConfig struct {
	// Verbosity — "quiet", "normal" или "verbose".
	Verbosity string `yaml:"verbosity" env:"UFE_VERBOSITY" env-default:"normal"`

	// Lang — язык объяснений (BCP 47): "en", "ru".
	Lang string `yaml:"lang" env:"UFE_LANG" env-default:"en"`

	// ExpandChain — разворачивать ли цепочку Unwrap() у нераспознанных ошибок.
	ExpandChain bool `yaml:"expandChain" env:"UFE_EXPAND_CHAIN" env-default:"false"`

	// MaxDepth — предельная вложенность объяснения.
	MaxDepth int `yaml:"maxDepth" env:"UFE_MAX_DEPTH" env-default:"64"`
}

func (e ExplainConfig) validate() error {
	if _, err := ufe.ParseVerbosity(e.Verbosity); err != nil {
		return fmt.Errorf("explain: %w", err)
	}
	if _, err := i18n.ParseLanguage(e.Lang); err != nil {
		return fmt.Errorf("explain: %w", err)
	}
	if e.MaxDepth < 1 {
		return fmt.Errorf("explain: max depth должен быть положительным, получено: %d", e.MaxDepth)
	}
	return nil
}

// Language возвращает поддерживаемый язык объяснений.
// Некорректное значение приводит к английскому языку.
func (c *Config) Language() language.Tag {
	tag, _ := i18n.ParseLanguage(c.Explain.Lang) //nolint:errcheck // проверено в Validate
	return tag
}

// ExplainContext строит контекст объяснений по настройкам.
// Дополнительные опции (например, ufe.WithRegistry) применяются последними.
func (c *Config) ExplainContext(extra ...ufe.Option) (*ufe.Context, error) {
	verbosity, err := ufe.ParseVerbosity(c.Explain.Verbosity)
	if err != nil {
		return nil, err
	}
	tag, err := i18n.ParseLanguage(c.Explain.Lang)
	if err != nil {
		return nil, err
	}

	opts := []ufe.Option{
		ufe.WithVerbosity(verbosity),
		ufe.WithLanguage(tag),
		ufe.WithCatalog(i18n.Catalog()),
		ufe.WithChainExpansion(c.Explain.ExpandChain),
	}
	if c.Explain.MaxDepth > 0 {
		opts = append(opts, ufe.WithMaxDepth(c.Explain.MaxDepth))
	}
	opts = append(opts, extra...)
	return ufe.NewContext(opts...), nil
}
