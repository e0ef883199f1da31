package githubql

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/commit-timeline/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

const DefaultEndpoint = "https://api.github.com/graphql"

const (
	defaultRepositoryPageSize = 10
	defaultRefPageSize        = 100
	defaultHistoryPageSize    = 100
)

type Client struct {
	endpoint  string
	transport http.RoundTripper

	repositoryPageSize int
	refPageSize        int
	historyPageSize    int
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithEndpoint replaces the GraphQL endpoint, e.g. for GitHub Enterprise Server
func WithEndpoint(endpoint string) Option {
	return func(x *Client) {
		x.endpoint = endpoint
	}
}

// WithTransport sets the base transport under the token and status handling
func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func WithRepositoryPageSize(n int) Option {
	return func(x *Client) {
		x.repositoryPageSize = n
	}
}

func WithRefPageSize(n int) Option {
	return func(x *Client) {
		x.refPageSize = n
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		endpoint:           DefaultEndpoint,
		transport:          http.DefaultTransport,
		repositoryPageSize: defaultRepositoryPageSize,
		refPageSize:        defaultRefPageSize,
		historyPageSize:    defaultHistoryPageSize,
	}

	for _, opt := range options {
		opt(client)
	}

	if client.endpoint == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GraphQL endpoint is empty")
	}
	if client.repositoryPageSize <= 0 || client.refPageSize <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "page size must be positive",
			goerr.V("repositoryPageSize", client.repositoryPageSize),
			goerr.V("refPageSize", client.refPageSize),
		)
	}

	return client, nil
}

func (x *Client) buildGraphQLClient(token types.GitHubAccessToken) *githubv4.Client {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   rejectUnauthorized(x.transport),
		},
	}
	return githubv4.NewEnterpriseClient(x.endpoint, httpClient)
}

// rejectUnauthorized turns a 401 response into ErrUnauthenticated so that an
// expired or revoked token can be told apart from other upstream failures.
func rejectUnauthorized(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusUnauthorized {
			safe.Close(resp.Body)
			return nil, goerr.Wrap(types.ErrUnauthenticated, "GitHub rejected the access token",
				goerr.V("url", req.URL.String()),
			)
		}
		return resp, nil
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func wrapQueryError(ctx context.Context, err error, msg string, values ...goerr.Option) error {
	if errors.Is(err, types.ErrUnauthenticated) {
		return goerr.Wrap(err, msg, values...)
	}

	logging.From(ctx).Debug("GraphQL query failed", slog.String("msg", msg), slog.Any("error", err))
	values = append(values, goerr.V("error", err.Error()))
	return goerr.Wrap(types.ErrUpstream, msg, values...)
}
