package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/mock"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/infra"
	"github.com/m-mizutani/commit-timeline/pkg/usecase"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

var testUser = &model.User{
	AccessToken: "gho_test",
	Name:        "alice",
	Email:       "alice@example.com",
}

var fixedNow = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return fixedNow })
}

func repo(owner, name string) *model.Repository {
	return &model.Repository{
		Name:  name,
		URL:   "https://github.com/" + owner + "/" + name,
		Owner: model.Owner{Login: owner},
	}
}

func branchCommit(sha string, r *model.Repository, branch string, date time.Time) *model.BranchCommit {
	return &model.BranchCommit{
		CommitDetail: model.CommitDetail{
			SHA:     types.CommitSHA(sha),
			URL:     r.URL + "/commit/" + sha,
			Message: "commit " + sha,
			Date:    date,
		},
		Repository: *r,
		Branch:     model.Branch{Name: types.BranchName(branch)},
	}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
}

func TestListCommits(t *testing.T) {
	web, api := repo("alice", "web"), repo("alice", "api")
	window := model.TimeWindow{Type: model.SinceWeek, Quantity: 2}

	t.Run("fetches every repository and aggregates", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListContributedRepositoriesFunc: func(ctx context.Context, token types.GitHubAccessToken, login string) ([]*model.Repository, error) {
				gt.V(t, token).Equal(testUser.AccessToken)
				gt.V(t, login).Equal("alice")
				return []*model.Repository{web, api}, nil
			},
			ListRepositoryCommitsFunc: func(ctx context.Context, token types.GitHubAccessToken, input *interfaces.ListRepositoryCommitsInput) ([]*model.BranchCommit, error) {
				gt.V(t, input.Email).Equal("alice@example.com")
				gt.True(t, input.Since.Equal(time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)))
				switch input.Repository.Name {
				case "web":
					return []*model.BranchCommit{
						branchCommit("a1", web, "main", day(20)),
						branchCommit("a1", web, "feature", day(20)),
						branchCommit("a2", web, "feature", day(25)),
					}, nil
				case "api":
					return []*model.BranchCommit{
						branchCommit("b1", api, "main", day(22)),
					}, nil
				}
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		commits := gt.R1(uc.ListCommits(testContext(), testUser, window)).NoError(t)
		gt.A(t, commits).Length(3)
		gt.V(t, commits[0].SHA).Equal("a2")
		gt.V(t, commits[1].SHA).Equal("b1")
		gt.V(t, commits[2].SHA).Equal("a1")
		gt.V(t, commits[2].Branches).Equal([]model.Branch{{Name: "main"}, {Name: "feature"}})
		gt.A(t, gh.ListRepositoryCommitsCalls()).Length(2)
	})

	t.Run("no session user", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.ListCommits(testContext(), nil, window)
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})

	t.Run("user without email", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithSampleData(true))
		_, err := uc.ListCommits(testContext(), &model.User{Name: "alice"}, window)
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})

	t.Run("sample data ignores the window", func(t *testing.T) {
		gh := &mock.GitHubMock{}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithSampleData(true))

		commits := gt.R1(uc.ListCommits(testContext(), testUser, model.TimeWindow{})).NoError(t)
		gt.A(t, commits).Length(4)
		gt.A(t, gh.ListContributedRepositoriesCalls()).Length(0)
	})

	t.Run("invalid window", func(t *testing.T) {
		gh := &mock.GitHubMock{}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.ListCommits(testContext(), testUser, model.TimeWindow{Type: "hour", Quantity: 1})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.A(t, gh.ListContributedRepositoriesCalls()).Length(0)
	})

	t.Run("no repositories yields empty list", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListContributedRepositoriesFunc: func(ctx context.Context, token types.GitHubAccessToken, login string) ([]*model.Repository, error) {
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		commits := gt.R1(uc.ListCommits(testContext(), testUser, window)).NoError(t)
		gt.V(t, commits).NotEqual(nil)
		gt.A(t, commits).Length(0)
	})

	t.Run("discovery failure aborts", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListContributedRepositoriesFunc: func(ctx context.Context, token types.GitHubAccessToken, login string) ([]*model.Repository, error) {
				return nil, fmt.Errorf("wrapped: %w", types.ErrUnauthenticated)
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.ListCommits(testContext(), testUser, window)
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
		gt.A(t, gh.ListRepositoryCommitsCalls()).Length(0)
	})

	t.Run("one failing repository fails the whole request", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListContributedRepositoriesFunc: func(ctx context.Context, token types.GitHubAccessToken, login string) ([]*model.Repository, error) {
				return []*model.Repository{web, api}, nil
			},
			ListRepositoryCommitsFunc: func(ctx context.Context, token types.GitHubAccessToken, input *interfaces.ListRepositoryCommitsInput) ([]*model.BranchCommit, error) {
				if input.Repository.Name == "api" {
					return nil, types.ErrUpstream
				}
				return []*model.BranchCommit{branchCommit("a1", web, "main", day(20))}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		commits, err := uc.ListCommits(testContext(), testUser, window)
		gt.True(t, errors.Is(err, types.ErrUpstream))
		gt.V(t, commits).Equal(nil)
	})

	t.Run("concurrency is bounded", func(t *testing.T) {
		var repos []*model.Repository
		for i := 0; i < 12; i++ {
			repos = append(repos, repo("alice", fmt.Sprintf("r%d", i)))
		}

		var running, peak atomic.Int32
		gh := &mock.GitHubMock{
			ListContributedRepositoriesFunc: func(ctx context.Context, token types.GitHubAccessToken, login string) ([]*model.Repository, error) {
				return repos, nil
			},
			ListRepositoryCommitsFunc: func(ctx context.Context, token types.GitHubAccessToken, input *interfaces.ListRepositoryCommitsInput) ([]*model.BranchCommit, error) {
				n := running.Add(1)
				defer running.Add(-1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithMaxConcurrency(2))

		gt.R1(uc.ListCommits(testContext(), testUser, window)).NoError(t)
		gt.A(t, gh.ListRepositoryCommitsCalls()).Length(12)
		gt.True(t, peak.Load() <= 2)
	})
}

func TestListCommitsCache(t *testing.T) {
	web := repo("alice", "web")
	window := model.TimeWindow{Type: model.SinceDay, Quantity: 14}
	key := "commit-timeline:commits:alice:alice@example.com:day:14"

	newGitHub := func() *mock.GitHubMock {
		return &mock.GitHubMock{
			ListContributedRepositoriesFunc: func(ctx context.Context, token types.GitHubAccessToken, login string) ([]*model.Repository, error) {
				return []*model.Repository{web}, nil
			},
			ListRepositoryCommitsFunc: func(ctx context.Context, token types.GitHubAccessToken, input *interfaces.ListRepositoryCommitsInput) ([]*model.BranchCommit, error) {
				return []*model.BranchCommit{branchCommit("a1", web, "main", day(20))}, nil
			},
		}
	}

	t.Run("hit skips GitHub", func(t *testing.T) {
		gh := newGitHub()
		cached := model.SampleCommits()
		c := &mock.CommitCacheMock{
			GetFunc: func(ctx context.Context, k string) ([]*model.Commit, error) {
				gt.V(t, k).Equal(key)
				return cached, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithCommitCache(c)))

		commits := gt.R1(uc.ListCommits(testContext(), testUser, window)).NoError(t)
		gt.V(t, commits).Equal(cached)
		gt.A(t, gh.ListContributedRepositoriesCalls()).Length(0)
	})

	t.Run("miss stores the result", func(t *testing.T) {
		var mu sync.Mutex
		var stored []*model.Commit
		c := &mock.CommitCacheMock{
			GetFunc: func(ctx context.Context, k string) ([]*model.Commit, error) {
				return nil, nil
			},
			SetFunc: func(ctx context.Context, k string, commits []*model.Commit) error {
				mu.Lock()
				defer mu.Unlock()
				gt.V(t, k).Equal(key)
				stored = commits
				return nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(newGitHub()), infra.WithCommitCache(c)))

		commits := gt.R1(uc.ListCommits(testContext(), testUser, window)).NoError(t)
		gt.A(t, commits).Length(1)
		gt.V(t, stored).Equal(commits)
	})

	t.Run("cache errors do not fail the request", func(t *testing.T) {
		c := &mock.CommitCacheMock{
			GetFunc: func(ctx context.Context, k string) ([]*model.Commit, error) {
				return nil, errors.New("connection refused")
			},
			SetFunc: func(ctx context.Context, k string, commits []*model.Commit) error {
				return errors.New("connection refused")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(newGitHub()), infra.WithCommitCache(c)))

		commits := gt.R1(uc.ListCommits(testContext(), testUser, window)).NoError(t)
		gt.A(t, commits).Length(1)
		gt.A(t, c.SetCalls()).Length(1)
	})
}

func TestAggregateCommits(t *testing.T) {
	web, api := repo("alice", "web"), repo("alice", "api")

	t.Run("one entry per sha with accumulated branches", func(t *testing.T) {
		results := [][]*model.BranchCommit{
			{
				branchCommit("a1", web, "main", day(1)),
				branchCommit("a1", web, "dev", day(1)),
			},
			{
				branchCommit("a1", api, "main", day(1)),
				branchCommit("b1", api, "main", day(2)),
			},
		}

		commits := usecase.AggregateCommits(results)
		gt.A(t, commits).Length(2)
		gt.V(t, commits[0].SHA).Equal("b1")
		gt.V(t, commits[1].SHA).Equal("a1")
		gt.V(t, commits[1].Repository.Name).Equal("web")
		gt.V(t, commits[1].Branches).Equal([]model.Branch{{Name: "main"}, {Name: "dev"}, {Name: "main"}})
	})

	t.Run("first occurrence is authoritative", func(t *testing.T) {
		first := branchCommit("a1", web, "main", day(1))
		later := branchCommit("a1", web, "dev", day(1))
		later.Message = "rewritten"

		commits := usecase.AggregateCommits([][]*model.BranchCommit{{first, later}})
		gt.V(t, commits[0].Message).Equal("commit a1")
	})

	t.Run("equal dates keep first seen order", func(t *testing.T) {
		results := [][]*model.BranchCommit{
			{branchCommit("x", web, "main", day(3)), branchCommit("y", web, "main", day(3))},
			{branchCommit("z", api, "main", day(3)), branchCommit("old", api, "main", day(1))},
		}

		commits := usecase.AggregateCommits(results)
		var shas []types.CommitSHA
		for _, c := range commits {
			shas = append(shas, c.SHA)
		}
		gt.V(t, shas).Equal([]types.CommitSHA{"x", "y", "z", "old"})
	})

	t.Run("empty input", func(t *testing.T) {
		commits := usecase.AggregateCommits(nil)
		gt.V(t, commits).NotEqual(nil)
		gt.A(t, commits).Length(0)
	})

	t.Run("output has exactly the distinct shas", func(t *testing.T) {
		var list []*model.BranchCommit
		for i := 0; i < 50; i++ {
			list = append(list, branchCommit(fmt.Sprintf("s%d", i%7), web, fmt.Sprintf("b%d", i), day(1+i%7)))
		}

		commits := usecase.AggregateCommits([][]*model.BranchCommit{list})
		gt.A(t, commits).Length(7)

		total := 0
		for i, c := range commits {
			total += len(c.Branches)
			if i > 0 {
				gt.False(t, c.Date.After(commits[i-1].Date))
			}
		}
		gt.V(t, total).Equal(50)
	})
}
