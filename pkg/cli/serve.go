package cli

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/cli/config"
	"github.com/m-mizutani/commit-timeline/pkg/controller/server"
	"github.com/m-mizutani/commit-timeline/pkg/infra"
	"github.com/m-mizutani/commit-timeline/pkg/usecase"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/commit-timeline/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr    string
		useMock bool

		githubOAuth config.GitHubOAuth
		githubAPI   config.GitHubAPI
		session     config.Session
		cache       config.Cache
		sentry      config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("TIMELINE_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "use-mock",
			Usage:       "Serve fixed sample commits instead of calling GitHub",
			Sources:     cli.EnvVars("TIMELINE_USE_MOCK", "USE_MOCK"),
			Destination: &useMock,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubOAuth.Flags(),
			githubAPI.Flags(),
			session.Flags(),
			cache.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("UseMock", useMock),
				slog.Any("GitHubOAuth", githubOAuth),
				slog.Any("GitHubAPI", githubAPI),
				slog.Any("Session", session),
				slog.Any("Cache", cache),
				slog.Any("Sentry", &sentry),
			)

			if err := session.Validate(); err != nil {
				return err
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			oauthClient, err := githubOAuth.New(githubAPI.RESTURL())
			if err != nil {
				return err
			}
			gqlClient, err := githubAPI.NewGraphQL()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(gqlClient),
				infra.WithGitHubOAuth(oauthClient),
			}

			commitCache, err := cache.New(ctx)
			if err != nil {
				return err
			}
			if commitCache != nil {
				if closer, ok := commitCache.(io.Closer); ok {
					defer safe.Close(closer)
				}
				infraOptions = append(infraOptions, infra.WithCommitCache(commitCache))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients,
				usecase.WithSampleData(useMock),
				usecase.WithMaxConcurrency(githubAPI.MaxConcurrency()),
			)
			s := server.New(uc, session.ServerOptions()...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// Listing commits of a busy user takes many GraphQL round trips
				WriteTimeout: 120 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
