package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/patkim97/folio/pkg/cascade"
	"github.com/patkim97/folio/pkg/config"
	"github.com/patkim97/folio/pkg/detector"
	"github.com/patkim97/folio/pkg/geo"
	"github.com/patkim97/folio/pkg/logger"
	"github.com/patkim97/folio/pkg/preference"
	folioredis "github.com/patkim97/folio/pkg/redis"
)

var (
	serverURL string
	profile   string
	useRedis  bool
	verbose   bool
	timeout   time.Duration

	log        *slog.Logger
	store      preference.Store
	closeStore func() error
)

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "folio",
		Short:        "Locale and contact client for a folio site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log = logger.New(
				logger.WithTextFormatter(),
				logger.WithLevel(level),
				logger.WithOutput(cmd.ErrOrStderr()),
			)
			return openStore(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeStore != nil {
				return closeStore()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "", "site base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&profile, "profile", "default", "preference profile")
	root.PersistentFlags().BoolVar(&useRedis, "redis", false, "keep the preference in Redis (REDIS_URL)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for the geo lookup")

	root.AddCommand(localeCmd(), toggleCmd(), sendCmd())
	return root
}

func openStore(ctx context.Context) error {
	store, closeStore = nil, nil
	if !useRedis {
		fs, err := preference.NewProfileFileStore(profile)
		if err != nil {
			return err
		}
		store = fs
		return nil
	}

	var cfg folioredis.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	client, err := folioredis.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	rs, err := preference.NewRedisStore(client, cfg.KeyPrefix, profile)
	if err != nil {
		_ = client.Close()
		return err
	}
	store, closeStore = rs, client.Close
	return nil
}

// newResolver builds the cascade for this process. The geo phase is only
// available when --server is set.
func newResolver(ctx context.Context) (*cascade.Resolver, error) {
	opts := []cascade.Option{cascade.WithLogger(log)}
	if serverURL != "" {
		f, err := geo.NewHTTPFetcher(serverURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cascade.WithFetcher(f))
	}
	return cascade.New(ctx, store, detector.FromEnvironment(), opts...)
}

// settle waits for the geo phase so commands act on the locale the visitor
// actually sees. A failed lookup keeps the current locale; only running out
// of time is an error.
func settle(ctx context.Context, resolver *cascade.Resolver) (cascade.Outcome, error) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := resolver.Start(ctx).AwaitContext(waitCtx)
	if err != nil && waitCtx.Err() != nil {
		return out, err
	}
	return out, nil
}
