// Package main содержит точку входа ufe: проверку документов и подключений
// с объяснением ошибок для пользователя.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Kargones/ufe/internal/command"
	"github.com/Kargones/ufe/internal/command/handlers"
	"github.com/Kargones/ufe/internal/config"
	"github.com/Kargones/ufe/internal/constants"
	"github.com/Kargones/ufe/internal/di"
	"github.com/Kargones/ufe/internal/pkg/apperrors"
	"github.com/Kargones/ufe/internal/pkg/i18n"
	"github.com/Kargones/ufe/internal/pkg/logging"
	"github.com/Kargones/ufe/internal/pkg/output"
	"github.com/Kargones/ufe/internal/pkg/tracing"
	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// shutdownTimeout ограничивает отправку span-ов при завершении.
const shutdownTimeout = 5 * time.Second

var registerHandlers = sync.OnceValue(handlers.RegisterAll)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run выполняет команду и возвращает exit code.
// Вынесена из main(), чтобы os.Exit() вызывался после всех defer (tracerShutdown, span.End).
func run(args []string, stdout, stderr io.Writer) int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return configFailure(stderr, apperrors.ErrConfigLoad, "Could not load the configuration", err)
	}
	if len(args) > 0 && args[0] != "" {
		cfg.Command = args[0]
	}
	if cfg.Command == "" {
		cfg.Command = constants.ActHelp
	}
	if err := cfg.Validate(); err != nil {
		return configFailure(stderr, apperrors.ErrConfigValidate, "The configuration is invalid", err)
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		return configFailure(stderr, apperrors.ErrConfigValidate, "The configuration is invalid", err)
	}
	l := app.Logger.With(slog.String("trace_id", app.TraceID), slog.String("command", cfg.Command))
	l.Debug("Информация о сборке",
		slog.String("version", constants.Version),
		slog.String("commit_hash", constants.PreCommitHash),
	)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.TracerShutdown(shutdownCtx); err != nil {
			l.Error("ошибка завершения tracing", slog.String("error", err.Error()))
		}
	}()

	ctx = tracing.WithTraceID(ctx, app.TraceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, app.TraceID)
	ctx, span := tracing.StartCommandSpan(ctx, cfg.Command)
	defer span.End()

	if err := registerHandlers(); err != nil {
		l.Error("ошибка регистрации команд", slog.String("error", err.Error()))
		return constants.ExitFailure
	}

	env := app.CommandEnv(stdout)
	collector := app.MetricsCollector
	defer func() {
		// Ошибки push логируются внутри и не влияют на exit code.
		_ = collector.Push(ctx)
	}()

	collector.RecordCommandStart(cfg.Command)
	execErr := execute(ctx, env, cfg.Command)
	collector.RecordCommandEnd(cfg.Command, time.Since(env.Start), execErr == nil)

	if execErr != nil {
		tree := env.Fail(cfg.Command, execErr)
		tracing.RecordExplanation(span, tree)
		return command.ExitCode(execErr)
	}
	l.Info("команда выполнена", slog.Duration("duration", time.Since(env.Start)))
	return constants.ExitOK
}

// execute находит обработчик и выполняет команду.
func execute(ctx context.Context, env *command.Env, name string) error {
	handler, ok := command.Get(name)
	if !ok {
		p := env.Explain.Printer()
		return apperrors.NewAppError(apperrors.ErrCommandNotFound,
			p.Sprintf("Unknown command %s", name), nil).
			WithHint(p.Sprintf("Run %s help to list the commands.", constants.AppName))
	}
	env.Logger.Debug("выполнение команды", slog.String("command", name))
	return handler.Execute(ctx, env)
}

// configFailure объясняет ошибку конфигурации в stderr. Логгер и формат вывода
// ещё не настроены, поэтому используется текстовый вывод и язык из UFE_LANG.
func configFailure(stderr io.Writer, code, message string, err error) int {
	tag, _ := i18n.ParseLanguage(os.Getenv("UFE_LANG")) //nolint:errcheck // при ошибке английский
	registry := di.ProvideRegistry(logging.NewNopLogger())
	ctx := ufe.NewContext(
		ufe.WithLanguage(tag),
		ufe.WithCatalog(i18n.Catalog()),
		ufe.WithRegistry(registry),
	)

	appErr := apperrors.NewAppError(code, ctx.Printer().Sprintf(message), err).
		WithHint(ctx.Printer().Sprintf("Check UFE_CONFIG_PATH and the UFE_* environment variables."))
	tree := ufe.Explain(appErr, ctx)

	renderer := output.NewRenderer()
	renderer.SetLanguage(tag)
	_ = renderer.Render(stderr, tree) //nolint:errcheck // stderr
	return constants.ExitFailure
}
