package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	dotEnvFiles []string
}

type Option func(*CLI)

// WithDotEnv replaces the env files loaded before flags are parsed. Default is ".env".
func WithDotEnv(files ...string) Option {
	return func(x *CLI) {
		x.dotEnvFiles = files
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		dotEnvFiles: []string{".env"},
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// loadDotEnv sets variables from env files that exist. Variables already set
// in the environment are kept.
func loadDotEnv(files []string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return goerr.Wrap(err, "failed to load env file", goerr.V("file", file))
		}
	}
	return nil
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	if err := loadDotEnv(x.dotEnvFiles); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	app := &cli.Command{
		Name:  "commit-timeline",
		Usage: "Timeline of your commits across every GitHub repository you contributed to",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("TIMELINE_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("TIMELINE_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("TIMELINE_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			listCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
