// Package dbcheck реализует команду db-check: проверку подключения к SQL Server
// по строке UFE_DB_DSN с объяснением ошибки подключения.
package dbcheck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Kargones/ufe/internal/adapter/mssql"
	"github.com/Kargones/ufe/internal/command"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/pkg/apperrors"
	"github.com/Kargones/ufe/internal/pkg/output"
)

func RegisterCmd() error {
	return command.Register(&Handler{})
}

// ClientFactory создаёт клиент SQL Server. В тестах подменяется моком.
type ClientFactory func(opts mssql.Options) (mssql.Client, error)

// Data — результат успешной проверки.
type Data struct {
	Server   string `json:"server"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// Handler обрабатывает команду db-check.
type Handler struct {
	// NewClient — фабрика клиента; nil означает mssql.NewClient.
	NewClient ClientFactory
}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActDBCheck
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Проверка подключения к SQL Server (UFE_DB_DSN)"
}

// Execute подключается к серверу и выводит его версию.
func (h *Handler) Execute(ctx context.Context, env *command.Env) error {
	p := env.Explain.Printer()
	cfg := env.Config.Database

	if cfg.DSN == "" {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			p.Sprintf("No database to check"), nil).
			WithHint(p.Sprintf("Set UFE_DB_DSN to a SQL Server connection string."))
	}

	newClient := h.NewClient
	if newClient == nil {
		newClient = mssql.NewClient
	}
	client, err := newClient(mssql.Options{DSN: cfg.DSN, Timeout: cfg.Timeout})
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			p.Sprintf("The connection string is invalid"), err).
			WithHint(p.Sprintf("Set UFE_DB_DSN to a SQL Server connection string."))
	}

	// DSN содержит пароль: в лог попадает только имя сервера.
	log := env.Logger.With(slog.String("server", client.Server()))
	log.Info("проверка подключения к базе данных", slog.Duration("timeout", cfg.Timeout))

	if err := client.Connect(ctx); err != nil {
		return apperrors.NewAppError(apperrors.ErrDatabaseConnect,
			p.Sprintf("The database check failed"), err).
			WithHint(p.Sprintf("Check UFE_DB_DSN and that the server is reachable."))
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Warn("не удалось закрыть соединение", slog.String("error", closeErr.Error()))
		}
	}()

	info, err := client.ServerInfo(ctx)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrDatabaseConnect,
			p.Sprintf("The database check failed"), err)
	}
	log.Info("подключение установлено", slog.String("database", info.Database))

	data := &Data{Server: client.Server(), Database: info.Database, Version: info.Version}
	if env.JSON() {
		return env.WriteResult(&output.Result{
			Status:  output.StatusSuccess,
			Command: constants.ActDBCheck,
			Data:    data,
		})
	}
	_, err = fmt.Fprintf(env.Stdout, "%s\n  %s\n",
		p.Sprintf("Connected to %s, database %s", data.Server, data.Database), data.Version)
	return err
}
