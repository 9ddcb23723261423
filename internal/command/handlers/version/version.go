// Package version реализует команду version: вывод версии приложения
// и числа встроенных конвертеров ошибок.
package version

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/Kargones/ufe/internal/command"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/pkg/output"
)

func RegisterCmd() error {
	return command.Register(&VersionHandler{})
}

// VersionData содержит информацию о версии приложения.
type VersionData struct {
	// Version — полная версия приложения.
	Version string `json:"version"`

	// GoVersion — версия Go, использованная при сборке.
	GoVersion string `json:"go_version"`

	// Commit — хеш коммита на момент сборки.
	Commit string `json:"commit"`

	// Converters — число конвертеров в реестре процесса.
	Converters int `json:"converters"`
}

// writeText выводит информацию о версии в человекочитаемом формате.
func (d *VersionData) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s version %s\n  Go:         %s\n  Commit:     %s\n  Converters: %d\n",
		constants.AppName, d.Version, d.GoVersion, d.Commit, d.Converters)
	return err
}

// buildVersionData создаёт VersionData с fallback значениями.
// Если version пустой — используется "dev", если commit пустой — "unknown".
func buildVersionData(version, commit string, converters int) *VersionData {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return &VersionData{
		Version:    version,
		GoVersion:  runtime.Version(),
		Commit:     commit,
		Converters: converters,
	}
}

// VersionHandler обрабатывает команду version.
type VersionHandler struct{}

// Name возвращает имя команды.
func (h *VersionHandler) Name() string {
	return constants.ActVersion
}

// Description возвращает описание команды для вывода в help.
func (h *VersionHandler) Description() string {
	return "Вывод информации о версии приложения"
}

// Execute выводит версию. Текстовый формат компактный, без metadata;
// trace_id и duration_ms есть только в JSON.
func (h *VersionHandler) Execute(_ context.Context, env *command.Env) error {
	versionData := buildVersionData(constants.Version, constants.PreCommitHash, env.Explain.Registry().Len())

	if !env.JSON() {
		return versionData.writeText(env.Stdout)
	}
	return env.WriteResult(&output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActVersion,
		Data:    versionData,
	})
}
