package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/infra/cache"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// ListCommits collects the user's commits since the window start across every
// repository they contributed to. Repositories are fetched concurrently and the
// first failure aborts the whole request.
func (x *UseCase) ListCommits(ctx context.Context, user *model.User, window model.TimeWindow) ([]*model.Commit, error) {
	if user == nil {
		return nil, goerr.Wrap(types.ErrUnauthenticated, "no user in session")
	}
	if user.Email == "" {
		return nil, goerr.Wrap(types.ErrUnauthenticated, "user has no primary email", goerr.V("user", user.Name))
	}

	if x.sampleData {
		return model.SampleCommits(), nil
	}

	if err := window.Validate(); err != nil {
		return nil, err
	}
	since := window.Since(logging.CtxTime(ctx))

	logger := logging.From(ctx).With(slog.String("user", user.Name))

	cacheKey := cache.Key(user.Name, user.Email, window)
	if c := x.clients.CommitCache(); c != nil {
		cached, err := c.Get(ctx, cacheKey)
		if err != nil {
			logger.Warn("Failed to read commit cache", slog.Any("error", err))
		} else if cached != nil {
			logger.Debug("Commit cache hit", slog.Int("commits", len(cached)))
			return cached, nil
		}
	}

	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	repos, err := gh.ListContributedRepositories(ctx, user.AccessToken, user.Name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to discover repositories")
	}

	logger.Info("Fetching commits",
		slog.Int("repositories", len(repos)),
		slog.Time("since", since),
		slog.Any("window", window),
	)

	results := make([][]*model.BranchCommit, len(repos))
	eg, egCtx := errgroup.WithContext(ctx)
	if x.maxConcurrency > 0 {
		eg.SetLimit(x.maxConcurrency)
	}

	for i, repo := range repos {
		eg.Go(func() error {
			commits, err := gh.ListRepositoryCommits(egCtx, user.AccessToken, &interfaces.ListRepositoryCommitsInput{
				Repository: repo,
				Email:      user.Email,
				Since:      since,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to fetch repository commits", goerr.V("repo", repo.FullName()))
			}
			results[i] = commits
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	commits := AggregateCommits(results)

	logger.Info("Fetched commits",
		slog.Int("repositories", len(repos)),
		slog.Int("commits", len(commits)),
	)

	if c := x.clients.CommitCache(); c != nil {
		if err := c.Set(ctx, cacheKey, commits); err != nil {
			logger.Warn("Failed to write commit cache", slog.Any("error", err))
		}
	}

	return commits, nil
}

// AggregateCommits merges per-repository results into one entry per SHA.
// Repository and commit fields come from the first occurrence, branches of
// later occurrences are appended as they are seen. The result is sorted by
// date, newest first; equal dates keep first-seen order.
func AggregateCommits(results [][]*model.BranchCommit) []*model.Commit {
	index := make(map[types.CommitSHA]*model.Commit)
	var commits []*model.Commit

	for _, list := range results {
		for _, bc := range list {
			if c, ok := index[bc.SHA]; ok {
				c.Branches = append(c.Branches, bc.Branch)
				continue
			}

			c := &model.Commit{
				CommitDetail: bc.CommitDetail,
				Repository:   bc.Repository,
				Branches:     []model.Branch{bc.Branch},
			}
			index[bc.SHA] = c
			commits = append(commits, c)
		}
	}

	slices.SortStableFunc(commits, func(a, b *model.Commit) int {
		return b.Date.Compare(a.Date)
	})

	if commits == nil {
		commits = []*model.Commit{}
	}
	return commits
}
