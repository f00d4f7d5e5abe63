package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/patkim97/folio/modules"
	modcontact "github.com/patkim97/folio/modules/contact"
	modlocale "github.com/patkim97/folio/modules/locale"
	"github.com/patkim97/folio/pkg/clientip"
	"github.com/patkim97/folio/pkg/config"
	"github.com/patkim97/folio/pkg/contact"
	"github.com/patkim97/folio/pkg/email"
	"github.com/patkim97/folio/pkg/environment"
	"github.com/patkim97/folio/pkg/httpserver"
	"github.com/patkim97/folio/pkg/i18n"
	"github.com/patkim97/folio/pkg/logger"
	"github.com/patkim97/folio/pkg/requestid"
)

type appConfig struct {
	Env            string        `env:"APP_ENV" envDefault:"development"`
	Name           string        `env:"APP_NAME" envDefault:"folio"`
	LogLevel       string        `env:"LOG_LEVEL"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
}

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		slog.Error("failed to load .env", logger.Error(err))
		os.Exit(1)
	}

	var (
		app     appConfig
		httpCfg httpserver.Config
		mailCfg email.Config
	)
	if err := errors.Join(config.Load(&app), config.Load(&httpCfg), config.Load(&mailCfg)); err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	log := newLogger(app)
	logger.SetAsDefault(log)

	if err := run(context.Background(), app, httpCfg, mailCfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(app appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	}
	if app.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(app.LogLevel, slog.LevelInfo)))
	}
	return logger.New(opts...)
}

func run(ctx context.Context, app appConfig, httpCfg httpserver.Config, mailCfg email.Config, log *slog.Logger) error {
	sender, err := email.NewSender(mailCfg)
	if err != nil {
		return err
	}
	if mailCfg.Provider == email.ProviderResend && mailCfg.ResendAPIKey == "" {
		// Submissions still validate; delivery answers 500 until the key is set.
		level := slog.LevelWarn
		if environment.Parse(app.Env).IsProduction() {
			level = slog.LevelError
		}
		log.Log(ctx, level, "RESEND_API_KEY is not set", logger.Provider(string(mailCfg.Provider)))
	}

	relay, err := contact.NewRelay(sender,
		contact.WithFrom(mailCfg.From()),
		contact.WithTo(mailCfg.To()),
		contact.WithLogger(log),
	)
	if err != nil {
		return err
	}

	router := modules.Router(modules.RouterOptions{
		Contact:        modcontact.NewService(relay, modcontact.WithLogger(log)),
		Locale:         modlocale.NewService(modlocale.WithLogger(log)),
		Logger:         log,
		RequestTimeout: app.RequestTimeout,
	})

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, router)
}
