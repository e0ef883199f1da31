package githubql

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"
)

type pageInfo struct {
	EndCursor   githubv4.String
	HasNextPage githubv4.Boolean
}

type repositoryNode struct {
	Name  githubv4.String
	URL   githubv4.String
	Owner struct {
		Login githubv4.String
	}
}

func (x repositoryNode) toModel() *model.Repository {
	return &model.Repository{
		Name:  string(x.Name),
		URL:   string(x.URL),
		Owner: model.Owner{Login: string(x.Owner.Login)},
	}
}

type contributedRepositoriesQuery struct {
	User struct {
		Login                     githubv4.String
		RepositoriesContributedTo struct {
			Nodes    []repositoryNode
			PageInfo pageInfo
		} `graphql:"repositoriesContributedTo(includeUserRepositories: true, contributionTypes: [COMMIT], first: $first, orderBy: {direction: DESC, field: PUSHED_AT}, after: $cursor)"`
	} `graphql:"user(login: $login)"`
}

// ListContributedRepositories returns every repository the user committed to,
// most recently pushed first, following the cursor until the last page.
func (x *Client) ListContributedRepositories(ctx context.Context, token types.GitHubAccessToken, login string) ([]*model.Repository, error) {
	if login == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "login is empty")
	}

	client := x.buildGraphQLClient(token)
	vars := map[string]any{
		"login":  githubv4.String(login),
		"first":  githubv4.Int(x.repositoryPageSize),
		"cursor": (*githubv4.String)(nil),
	}

	var repos []*model.Repository
	for page := 1; ; page++ {
		var q contributedRepositoriesQuery
		if err := client.Query(ctx, &q, vars); err != nil {
			return nil, wrapQueryError(ctx, err, "failed to list contributed repositories",
				goerr.V("login", login),
				goerr.V("page", page),
			)
		}
		if q.User.Login == "" {
			return nil, goerr.Wrap(types.ErrInvalidGitHubData, "user not found in response", goerr.V("login", login))
		}

		for _, node := range q.User.RepositoriesContributedTo.Nodes {
			repos = append(repos, node.toModel())
		}

		info := q.User.RepositoriesContributedTo.PageInfo
		if !info.HasNextPage {
			break
		}
		vars["cursor"] = githubv4.NewString(info.EndCursor)
	}

	logging.From(ctx).Debug("Listed contributed repositories",
		slog.String("login", login),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}
