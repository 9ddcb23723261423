// Package help реализует команду help: список зарегистрированных команд
// и переменных окружения, управляющих выводом.
package help

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Kargones/ufe/internal/command"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/pkg/output"
)

func RegisterCmd() error {
	return command.Register(&Handler{})
}

// Data содержит информацию обо всех доступных командах.
type Data struct {
	Commands []CommandInfo `json:"commands"`
	Options  []OptionInfo  `json:"options"`
}

// CommandInfo описывает одну команду.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OptionInfo описывает переменную окружения.
type OptionInfo struct {
	Env         string `json:"env"`
	Description string `json:"description"`
}

// options — основные переменные окружения. Полный список в internal/config.
var options = []OptionInfo{
	{"UFE_COMMAND", "Имя команды (или первый аргумент командной строки)"},
	{"UFE_CONFIG_PATH", "Путь к YAML-файлу конфигурации; переменные окружения приоритетнее"},
	{"UFE_INPUT", "Проверяемый документ YAML или JSON"},
	{"UFE_SCHEMA", "JSON-схема для проверки документа"},
	{"UFE_DB_DSN", "Строка подключения SQL Server для db-check"},
	{"UFE_OUTPUT_FORMAT=json", "Машиночитаемый вывод"},
	{"UFE_COLOR=auto|always|never", "Цветной текстовый вывод"},
	{"UFE_VERBOSITY=quiet|normal|verbose", "Подробность объяснений"},
	{"UFE_LANG=en|ru", "Язык объяснений"},
	{"UFE_EXPAND_CHAIN=true", "Объяснять причины ошибок без конвертера"},
	{"UFE_LOG_LEVEL=debug", "Уровень логирования (логи пишутся в stderr)"},
}

// Handler обрабатывает команду help.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActHelp
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод списка доступных команд"
}

// Execute собирает список команд и выводит результат.
// Текстовый формат без metadata, как у version.
func (h *Handler) Execute(_ context.Context, env *command.Env) error {
	helpData := buildData()

	if !env.JSON() {
		return helpData.writeText(env.Stdout)
	}
	return env.WriteResult(&output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActHelp,
		Data:    helpData,
	})
}

// buildData собирает информацию обо всех зарегистрированных командах.
func buildData() *Data {
	handlers := command.All()
	data := &Data{
		Commands: make([]CommandInfo, 0, len(handlers)),
		Options:  options,
	}
	for _, h := range handlers {
		data.Commands = append(data.Commands, CommandInfo{
			Name:        h.Name(),
			Description: h.Description(),
		})
	}
	return data
}

// writeText выводит информацию о командах в человекочитаемом формате.
func (d *Data) writeText(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s — объяснение ошибок для пользователя\n", constants.AppName)
	fmt.Fprintf(&sb, "\nИспользование: %s <команда>\n", constants.AppName)
	sb.WriteString("\nКоманды:\n")

	maxLen := 0
	for _, cmd := range d.Commands {
		maxLen = max(maxLen, len(cmd.Name))
	}
	for _, cmd := range d.Commands {
		fmt.Fprintf(&sb, "  %-*s  %s\n", maxLen, cmd.Name, cmd.Description)
	}

	sb.WriteString("\nОпции:\n")
	maxLen = 0
	for _, opt := range d.Options {
		maxLen = max(maxLen, len(opt.Env))
	}
	for _, opt := range d.Options {
		fmt.Fprintf(&sb, "  %-*s  %s\n", maxLen, opt.Env, opt.Description)
	}

	_, err := fmt.Fprint(w, sb.String())
	return err
}
