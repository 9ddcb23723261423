// Package converters реализует команду converters: список конвертеров ошибок,
// зарегистрированных в реестре процесса, в порядке их проверки.
package converters

import (
	"context"

	"github.com/rodaine/table"

	"github.com/Kargones/ufe/internal/command"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/pkg/output"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Режимы конвертера.
const (
	ModeBound  = "bound"
	ModeCustom = "custom"
)

func RegisterCmd() error {
	return command.Register(&Handler{})
}

// Data — содержимое реестра.
type Data struct {
	Frozen     bool   `json:"frozen"`
	Converters []Info `json:"converters"`
}

// Info описывает один конвертер.
type Info struct {
	// Index — позиция в порядке проверки, с единицы.
	Index int    `json:"index"`
	Name  string `json:"name"`
	Mode  string `json:"mode"`
}

// Handler обрабатывает команду converters.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActConverters
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Список зарегистрированных конвертеров ошибок"
}

// Execute выводит реестр таблицей или, в формате json, как Result.
func (h *Handler) Execute(_ context.Context, env *command.Env) error {
	data := buildData(env.Explain.Registry())
	env.Logger.Debug("реестр конвертеров", "count", len(data.Converters), "frozen", data.Frozen)

	if env.JSON() {
		return env.WriteResult(&output.Result{
			Status:  output.StatusSuccess,
			Command: constants.ActConverters,
			Data:    data,
		})
	}

	tbl := table.New("#", "NAME", "MODE").WithWriter(env.Stdout)
	for _, c := range data.Converters {
		tbl.AddRow(c.Index, c.Name, c.Mode)
	}
	tbl.Print()
	return nil
}

func buildData(r *ufe.Registry) *Data {
	converters := r.Converters()
	data := &Data{
		Frozen:     r.Frozen(),
		Converters: make([]Info, 0, len(converters)),
	}
	for i, c := range converters {
		mode := ModeCustom
		if c.IsBound() {
			mode = ModeBound
		}
		data.Converters = append(data.Converters, Info{Index: i + 1, Name: c.Name(), Mode: mode})
	}
	return data
}
