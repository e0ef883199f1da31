package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub GitHubOAuth CommitCache

import (
	"context"
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
)

// GitHub reads contribution data through the GitHub GraphQL API on behalf of a user
type GitHub interface {
	ListContributedRepositories(ctx context.Context, token types.GitHubAccessToken, login string) ([]*model.Repository, error)
	ListRepositoryCommits(ctx context.Context, token types.GitHubAccessToken, input *ListRepositoryCommitsInput) ([]*model.BranchCommit, error)
}

type ListRepositoryCommitsInput struct {
	Repository *model.Repository
	Email      string
	Since      time.Time
}

// GitHubOAuth covers the OAuth web flow and the REST calls made right after it
type GitHubOAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (types.GitHubAccessToken, error)
	GetUser(ctx context.Context, token types.GitHubAccessToken) (*model.GitHubUser, error)
	GetPrimaryEmail(ctx context.Context, token types.GitHubAccessToken) (string, error)
}

// CommitCache stores aggregated commit lists. Get returns nil without error on a miss.
type CommitCache interface {
	Get(ctx context.Context, key string) ([]*model.Commit, error)
	Set(ctx context.Context, key string, commits []*model.Commit) error
}
