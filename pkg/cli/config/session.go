package config

import (
	"log/slog"

	"github.com/m-mizutani/commit-timeline/pkg/controller/server"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const minCookiePasswordLength = 32

type Session struct {
	cookiePassword types.CookiePassword `masq:"secret"`
	production     bool
}

func (x *Session) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cookie-password",
			Usage:       "Secret to encrypt and sign session cookies (32 characters or more)",
			Category:    "Session",
			Destination: (*string)(&x.cookiePassword),
			Sources:     cli.EnvVars("TIMELINE_COOKIE_PASSWORD", "COOKIE_PASSWORD"),
			Required:    true,
		},
		&cli.BoolFlag{
			Name:        "production",
			Usage:       "Serve cookies with the Secure attribute",
			Category:    "Session",
			Destination: &x.production,
			Sources:     cli.EnvVars("TIMELINE_PRODUCTION"),
		},
	}
}

func (x Session) Validate() error {
	if len(x.cookiePassword) < minCookiePasswordLength {
		return goerr.Wrap(types.ErrInvalidOption, "cookie password is too short",
			goerr.V("length", len(x.cookiePassword)),
			goerr.V("min", minCookiePasswordLength),
		)
	}
	return nil
}

func (x Session) ServerOptions() []server.Option {
	return []server.Option{
		server.WithCookiePassword(x.cookiePassword),
		server.WithSecureCookie(x.production),
	}
}

func (x Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("CookiePassword.len", len(x.cookiePassword)),
		slog.Bool("Production", x.production),
	)
}
