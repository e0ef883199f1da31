package config

import (
	"log/slog"

	"github.com/m-mizutani/commit-timeline/pkg/infra/githubql"
	"github.com/m-mizutani/commit-timeline/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const defaultRESTURL = "https://api.github.com/"

type GitHubAPI struct {
	graphqlURL     string
	restURL        string
	maxConcurrency int64
}

func (x *GitHubAPI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-graphql-url",
			Usage:       "GitHub GraphQL API endpoint",
			Category:    "GitHub API",
			Value:       githubql.DefaultEndpoint,
			Destination: &x.graphqlURL,
			Sources:     cli.EnvVars("TIMELINE_GITHUB_GRAPHQL_URL"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub API",
			Value:       defaultRESTURL,
			Destination: &x.restURL,
			Sources:     cli.EnvVars("TIMELINE_GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-max-concurrency",
			Usage:       "Max number of repositories fetched at once (0 = unlimited)",
			Category:    "GitHub API",
			Value:       usecase.DefaultMaxConcurrency,
			Destination: &x.maxConcurrency,
			Sources:     cli.EnvVars("TIMELINE_GITHUB_MAX_CONCURRENCY"),
		},
	}
}

func (x GitHubAPI) NewGraphQL() (*githubql.Client, error) {
	return githubql.New(githubql.WithEndpoint(x.graphqlURL))
}

func (x GitHubAPI) RESTURL() string {
	return x.restURL
}

func (x GitHubAPI) MaxConcurrency() int {
	return int(x.maxConcurrency)
}

func (x GitHubAPI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("GraphQLURL", x.graphqlURL),
		slog.String("RESTURL", x.restURL),
		slog.Int64("MaxConcurrency", x.maxConcurrency),
	)
}
