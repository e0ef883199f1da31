package githubql

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"
)

type commitNode struct {
	OID           githubv4.String
	Message       githubv4.String
	URL           githubv4.String
	CommittedDate githubv4.DateTime
	ChangedFiles  githubv4.Int
	Additions     githubv4.Int
	Deletions     githubv4.Int
}

type refNode struct {
	Name   githubv4.String
	Target struct {
		Commit struct {
			History struct {
				Nodes []commitNode
			} `graphql:"history(first: $historySize, author: {emails: [$email]}, since: $since)"`
		} `graphql:"... on Commit"`
	}
}

type repositoryCommitsQuery struct {
	Repository struct {
		Refs struct {
			Nodes    []refNode
			PageInfo pageInfo
		} `graphql:"refs(refPrefix: \"refs/heads/\", first: $refSize, after: $cursor)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// ListRepositoryCommits returns the commits authored by input.Email since
// input.Since on every branch of the repository. A commit reachable from
// several branches is returned once per branch. Only the first history page
// of each branch is read.
func (x *Client) ListRepositoryCommits(ctx context.Context, token types.GitHubAccessToken, input *interfaces.ListRepositoryCommitsInput) ([]*model.BranchCommit, error) {
	if input == nil || input.Repository == nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository is required")
	}
	if err := input.Repository.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "invalid repository", goerr.V("error", err.Error()))
	}
	if input.Email == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "author email is empty")
	}

	repo := *input.Repository
	client := x.buildGraphQLClient(token)
	vars := map[string]any{
		"owner":       githubv4.String(repo.Owner.Login),
		"name":        githubv4.String(repo.Name),
		"email":       githubv4.String(input.Email),
		"since":       githubv4.GitTimestamp{Time: input.Since},
		"refSize":     githubv4.Int(x.refPageSize),
		"historySize": githubv4.Int(x.historyPageSize),
		"cursor":      (*githubv4.String)(nil),
	}

	var commits []*model.BranchCommit
	for page := 1; ; page++ {
		var q repositoryCommitsQuery
		if err := client.Query(ctx, &q, vars); err != nil {
			return nil, wrapQueryError(ctx, err, "failed to list repository commits",
				goerr.V("repo", repo.FullName()),
				goerr.V("page", page),
			)
		}

		for _, ref := range q.Repository.Refs.Nodes {
			branch := model.Branch{Name: types.BranchName(ref.Name)}
			for _, node := range ref.Target.Commit.History.Nodes {
				commits = append(commits, &model.BranchCommit{
					CommitDetail: model.CommitDetail{
						SHA:          types.CommitSHA(node.OID),
						URL:          string(node.URL),
						Message:      string(node.Message),
						Date:         node.CommittedDate.Time,
						ChangedFiles: int(node.ChangedFiles),
						Additions:    int(node.Additions),
						Deletions:    int(node.Deletions),
					},
					Repository: repo,
					Branch:     branch,
				})
			}
		}

		info := q.Repository.Refs.PageInfo
		if !info.HasNextPage {
			break
		}
		vars["cursor"] = githubv4.NewString(info.EndCursor)
	}

	logging.From(ctx).Debug("Listed repository commits",
		slog.String("repo", repo.FullName()),
		slog.Int("count", len(commits)),
	)

	return commits, nil
}
