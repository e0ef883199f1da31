package ghoauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	oauth2github "golang.org/x/oauth2/github"
)

// Scopes requested on login. repo is needed to read commits of private repositories.
var Scopes = []string{"repo", "read:user", "user:email"}

type Client struct {
	config     *oauth2.Config
	apiURL     string
	httpClient *http.Client
}

var _ interfaces.GitHubOAuth = (*Client)(nil)

type Option func(*Client)

// WithEndpoint replaces github.com authorize and token URLs
func WithEndpoint(authURL, tokenURL string) Option {
	return func(x *Client) {
		x.config.Endpoint = oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		}
	}
}

// WithAPIURL replaces the REST API base URL (default https://api.github.com/)
func WithAPIURL(apiURL string) Option {
	return func(x *Client) {
		x.apiURL = apiURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// New creates a client. Client ID and secret may be empty when only the REST
// lookups are used with an existing token; Exchange fails in that case.
func New(clientID types.GitHubClientID, secret types.GitHubClientSecret, redirectURL string, options ...Option) (*Client, error) {
	client := &Client{
		config: &oauth2.Config{
			ClientID:     string(clientID),
			ClientSecret: string(secret),
			Endpoint:     oauth2github.Endpoint,
			RedirectURL:  redirectURL,
			Scopes:       Scopes,
		},
	}

	for _, opt := range options {
		opt(client)
	}

	if client.apiURL != "" {
		if _, err := url.Parse(client.apiURL); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL",
				goerr.V("url", client.apiURL),
				goerr.V("error", err.Error()),
			)
		}
	}

	return client, nil
}

func (x *Client) withHTTPClient(ctx context.Context) context.Context {
	if x.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)
}

func (x *Client) AuthCodeURL(state string) string {
	return x.config.AuthCodeURL(state)
}

func (x *Client) Exchange(ctx context.Context, code string) (types.GitHubAccessToken, error) {
	if x.config.ClientID == "" || x.config.ClientSecret == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth client ID and secret are required")
	}

	token, err := x.config.Exchange(x.withHTTPClient(ctx), code)
	if err != nil {
		return "", goerr.Wrap(types.ErrUpstream, "failed to exchange OAuth code",
			goerr.V("error", err.Error()),
		)
	}
	if token.AccessToken == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "access token is empty in OAuth response")
	}

	logging.From(ctx).Debug("Exchanged OAuth code", slog.String("tokenType", token.TokenType))
	return types.GitHubAccessToken(token.AccessToken), nil
}

func (x *Client) buildGithubClient(ctx context.Context, token types.GitHubAccessToken) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	client := github.NewClient(oauth2.NewClient(x.withHTTPClient(ctx), ts))

	if x.apiURL != "" {
		baseURL := x.apiURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", baseURL))
		}
		client.BaseURL = u
	}

	return client, nil
}

func (x *Client) GetUser(ctx context.Context, token types.GitHubAccessToken) (*model.GitHubUser, error) {
	client, err := x.buildGithubClient(ctx, token)
	if err != nil {
		return nil, err
	}

	// https://docs.github.com/en/rest/users/users#get-the-authenticated-user
	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, wrapAPIError(err, "failed to get authenticated user")
	}
	if user.GetLogin() == "" {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "login is empty in GitHub user")
	}

	return &model.GitHubUser{
		Login:     user.GetLogin(),
		URL:       user.GetHTMLURL(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

// GetPrimaryEmail returns the first email marked as primary, or an empty
// string if the user has none visible to the token.
func (x *Client) GetPrimaryEmail(ctx context.Context, token types.GitHubAccessToken) (string, error) {
	client, err := x.buildGithubClient(ctx, token)
	if err != nil {
		return "", err
	}

	// https://docs.github.com/en/rest/users/emails#list-email-addresses-for-the-authenticated-user
	emails, _, err := client.Users.ListEmails(ctx, &github.ListOptions{PerPage: 100})
	if err != nil {
		return "", wrapAPIError(err, "failed to list user emails")
	}

	for _, email := range emails {
		if email.GetPrimary() {
			return email.GetEmail(), nil
		}
	}

	logging.From(ctx).Warn("No primary email found", slog.Int("emails", len(emails)))
	return "", nil
}

func wrapAPIError(err error, msg string) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusUnauthorized {
		return goerr.Wrap(types.ErrUnauthenticated, msg, goerr.V("error", err.Error()))
	}
	return goerr.Wrap(types.ErrUpstream, msg, goerr.V("error", err.Error()))
}
