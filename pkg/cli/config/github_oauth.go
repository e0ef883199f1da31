package config

import (
	"log/slog"

	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/infra/ghoauth"
	"github.com/urfave/cli/v3"
)

type GitHubOAuth struct {
	clientID     types.GitHubClientID
	clientSecret types.GitHubClientSecret `masq:"secret"`
	redirectURL  string
}

func (x *GitHubOAuth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-client-id",
			Usage:       "GitHub OAuth App client ID",
			Category:    "GitHub OAuth",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("TIMELINE_GITHUB_CLIENT_ID", "GITHUB_CLIENT_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-client-secret",
			Usage:       "GitHub OAuth App client secret",
			Category:    "GitHub OAuth",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("TIMELINE_GITHUB_CLIENT_SECRET", "GITHUB_CLIENT_SECRET"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-redirect-url",
			Usage:       "OAuth callback URL, e.g. https://example.com/api/auth/authorize",
			Category:    "GitHub OAuth",
			Destination: &x.redirectURL,
			Sources:     cli.EnvVars("TIMELINE_GITHUB_REDIRECT_URL", "GITHUB_REDIRECT_URL"),
		},
	}
}

// New creates an OAuth client that calls the REST API at apiURL after login
func (x GitHubOAuth) New(apiURL string) (*ghoauth.Client, error) {
	return ghoauth.New(x.clientID, x.clientSecret, x.redirectURL, ghoauth.WithAPIURL(apiURL))
}

func (x GitHubOAuth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ClientID", string(x.clientID)),
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.String("RedirectURL", x.redirectURL),
	)
}
