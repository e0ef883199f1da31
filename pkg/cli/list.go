package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/commit-timeline/pkg/cli/config"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/infra"
	"github.com/m-mizutani/commit-timeline/pkg/infra/ghoauth"
	"github.com/m-mizutani/commit-timeline/pkg/usecase"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		token         types.GitHubAccessToken
		sinceType     string
		sinceQuantity int64
		groupBy       string
		timezone      string
		useMock       bool

		githubAPI config.GitHubAPI
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Print your commit timeline to stdout",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "github-token",
				Aliases:     []string{"t"},
				Usage:       "GitHub access token with repo, read:user and user:email scopes",
				Sources:     cli.EnvVars("TIMELINE_GITHUB_TOKEN", "GITHUB_TOKEN"),
				Destination: (*string)(&token),
			},
			&cli.StringFlag{
				Name:        "since-type",
				Usage:       "Unit of the time window [day|week|month|year]",
				Value:       string(model.SinceDay),
				Destination: &sinceType,
			},
			&cli.Int64Flag{
				Name:        "since-quantity",
				Aliases:     []string{"n"},
				Usage:       "Number of units to look back",
				Value:       14,
				Destination: &sinceQuantity,
			},
			&cli.StringFlag{
				Name:        "group-by",
				Aliases:     []string{"g"},
				Usage:       "Group commits by [date|week|repository]",
				Value:       string(model.GroupByDate),
				Destination: &groupBy,
			},
			&cli.StringFlag{
				Name:        "timezone",
				Usage:       "Timezone used to group and print dates",
				Value:       "Local",
				Destination: &timezone,
			},
			&cli.BoolFlag{
				Name:        "use-mock",
				Usage:       "Print fixed sample commits instead of calling GitHub",
				Sources:     cli.EnvVars("TIMELINE_USE_MOCK", "USE_MOCK"),
				Destination: &useMock,
			},
		}, githubAPI.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			window := model.TimeWindow{Type: model.SinceType(sinceType), Quantity: int(sinceQuantity)}
			by := model.GroupBy(groupBy)
			if err := by.Validate(); err != nil {
				return err
			}
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return goerr.Wrap(types.ErrInvalidOption, "unknown timezone", goerr.V("timezone", timezone))
			}

			logging.Default().Debug("starting list",
				slog.Any("window", window),
				slog.Any("groupBy", by),
				slog.Any("GitHubAPI", githubAPI),
			)

			commits, err := runList(ctx, token, window, useMock, githubAPI)
			if err != nil {
				return err
			}

			printTimeline(c.Root().Writer, model.GroupCommits(commits, by, loc), loc)
			return nil
		},
	}
}

func runList(ctx context.Context, token types.GitHubAccessToken, window model.TimeWindow, useMock bool, githubAPI config.GitHubAPI) ([]*model.Commit, error) {
	if useMock {
		uc := usecase.New(infra.New(), usecase.WithSampleData(true))
		return uc.ListCommits(ctx, &model.User{Name: "sample", Email: "sample@example.com"}, window)
	}

	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--github-token is required")
	}

	gqlClient, err := githubAPI.NewGraphQL()
	if err != nil {
		return nil, err
	}
	restClient, err := ghoauth.New("", "", "", ghoauth.WithAPIURL(githubAPI.RESTURL()))
	if err != nil {
		return nil, err
	}

	uc := usecase.New(
		infra.New(
			infra.WithGitHub(gqlClient),
			infra.WithGitHubOAuth(restClient),
		),
		usecase.WithMaxConcurrency(githubAPI.MaxConcurrency()),
	)

	user, err := uc.LookupUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return uc.ListCommits(ctx, user, window)
}

var (
	groupColor  = color.New(color.FgCyan, color.Bold)
	shaColor    = color.New(color.FgYellow)
	repoColor   = color.New(color.FgGreen)
	branchColor = color.New(color.FgMagenta)
)

func printTimeline(w io.Writer, groups []*model.CommitGroup, loc *time.Location) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "no commits")
		return
	}

	for _, group := range groups {
		groupColor.Fprintf(w, "%s (%d)\n", group.Key, len(group.Commits))

		for _, commit := range group.Commits {
			branches := make([]string, len(commit.Branches))
			for i, b := range commit.Branches {
				branches[i] = string(b.Name)
			}

			fmt.Fprintf(w, "  %s %s %s %s %s +%d -%d\n",
				shaColor.Sprint(commit.SHA.Short()),
				commit.Date.In(loc).Format("2006-01-02 15:04"),
				repoColor.Sprint(commit.Repository.FullName()),
				branchColor.Sprint("["+strings.Join(branches, ",")+"]"),
				firstLine(commit.Message),
				commit.Additions,
				commit.Deletions,
			)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
