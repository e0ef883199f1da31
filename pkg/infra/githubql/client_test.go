package githubql_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/infra/githubql"
	"github.com/m-mizutani/gt"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type fakeGraphQL struct {
	t         *testing.T
	responses []string
	status    int

	mu       sync.Mutex
	requests []graphQLRequest
	auth     []string
}

func (x *fakeGraphQL) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphQLRequest
	gt.NoError(x.t, json.NewDecoder(r.Body).Decode(&req))

	x.mu.Lock()
	idx := len(x.requests)
	x.requests = append(x.requests, req)
	x.auth = append(x.auth, r.Header.Get("Authorization"))
	x.mu.Unlock()

	if x.status != 0 {
		w.WriteHeader(x.status)
		return
	}
	if idx >= len(x.responses) {
		x.t.Errorf("unexpected request #%d: %s", idx, req.Query)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(x.responses[idx]))
}

func newClient(t *testing.T, fake *fakeGraphQL) *githubql.Client {
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return gt.R1(githubql.New(githubql.WithEndpoint(srv.URL))).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		_, err := githubql.New()
		gt.NoError(t, err)
	})

	t.Run("empty endpoint fails", func(t *testing.T) {
		_, err := githubql.New(githubql.WithEndpoint(""))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("zero page size fails", func(t *testing.T) {
		_, err := githubql.New(githubql.WithRefPageSize(0))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestListContributedRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("follows cursor until the last page", func(t *testing.T) {
		fake := &fakeGraphQL{t: t, responses: []string{
			`{"data":{"user":{"login":"alice","repositoriesContributedTo":{
				"nodes":[
					{"name":"web","url":"https://github.com/alice/web","owner":{"login":"alice"}},
					{"name":"lib","url":"https://github.com/org/lib","owner":{"login":"org"}}
				],
				"pageInfo":{"endCursor":"c1","hasNextPage":true}}}}}`,
			`{"data":{"user":{"login":"alice","repositoriesContributedTo":{
				"nodes":[{"name":"api","url":"https://github.com/alice/api","owner":{"login":"alice"}}],
				"pageInfo":{"endCursor":"c2","hasNextPage":false}}}}}`,
		}}
		client := newClient(t, fake)

		repos := gt.R1(client.ListContributedRepositories(ctx, "tok-123", "alice")).NoError(t)
		gt.A(t, repos).Length(3)
		gt.V(t, repos[0]).Equal(&model.Repository{
			Name:  "web",
			URL:   "https://github.com/alice/web",
			Owner: model.Owner{Login: "alice"},
		})
		gt.V(t, repos[1].FullName()).Equal("org/lib")
		gt.V(t, repos[2].FullName()).Equal("alice/api")

		gt.A(t, fake.requests).Length(2)
		gt.S(t, fake.requests[0].Query).Contains("repositoriesContributedTo(includeUserRepositories: true, contributionTypes: [COMMIT]")
		gt.V(t, fake.requests[0].Variables["login"]).Equal("alice")
		gt.V(t, fake.requests[0].Variables["first"]).Equal(float64(10))
		gt.V(t, fake.requests[0].Variables["cursor"]).Equal(nil)
		gt.V(t, fake.requests[1].Variables["cursor"]).Equal("c1")
		gt.V(t, fake.auth[0]).Equal("Bearer tok-123")
	})

	t.Run("no repositories", func(t *testing.T) {
		fake := &fakeGraphQL{t: t, responses: []string{
			`{"data":{"user":{"login":"alice","repositoriesContributedTo":{"nodes":[],"pageInfo":{"endCursor":null,"hasNextPage":false}}}}}`,
		}}
		repos := gt.R1(newClient(t, fake).ListContributedRepositories(ctx, "tok", "alice")).NoError(t)
		gt.A(t, repos).Length(0)
	})

	t.Run("missing user is invalid data", func(t *testing.T) {
		fake := &fakeGraphQL{t: t, responses: []string{`{"data":{"user":null}}`}}
		_, err := newClient(t, fake).ListContributedRepositories(ctx, "tok", "ghost")
		gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	})

	t.Run("401 is unauthenticated", func(t *testing.T) {
		fake := &fakeGraphQL{t: t, status: http.StatusUnauthorized}
		_, err := newClient(t, fake).ListContributedRepositories(ctx, "expired", "alice")
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})

	t.Run("server error is upstream failure", func(t *testing.T) {
		fake := &fakeGraphQL{t: t, status: http.StatusBadGateway}
		_, err := newClient(t, fake).ListContributedRepositories(ctx, "tok", "alice")
		gt.True(t, errors.Is(err, types.ErrUpstream))
		gt.False(t, errors.Is(err, types.ErrUnauthenticated))
	})

	t.Run("failure on a later page returns no partial result", func(t *testing.T) {
		fake := &fakeGraphQL{t: t, responses: []string{
			`{"data":{"user":{"login":"alice","repositoriesContributedTo":{
				"nodes":[{"name":"web","url":"u","owner":{"login":"alice"}}],
				"pageInfo":{"endCursor":"c1","hasNextPage":true}}}}}`,
			`{"errors":[{"message":"something went wrong"}]}`,
		}}
		repos, err := newClient(t, fake).ListContributedRepositories(ctx, "tok", "alice")
		gt.True(t, errors.Is(err, types.ErrUpstream))
		gt.V(t, repos).Equal(nil)
	})

	t.Run("empty login", func(t *testing.T) {
		fake := &fakeGraphQL{t: t}
		_, err := newClient(t, fake).ListContributedRepositories(ctx, "tok", "")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.A(t, fake.requests).Length(0)
	})
}

func TestListRepositoryCommits(t *testing.T) {
	ctx := context.Background()
	repo := &model.Repository{
		Name:  "web",
		URL:   "https://github.com/alice/web",
		Owner: model.Owner{Login: "alice"},
	}
	since := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("flattens branch histories across ref pages", func(t *testing.T) {
		fake := &fakeGraphQL{t: t, responses: []string{
			`{"data":{"repository":{"refs":{
				"nodes":[
					{"name":"main","target":{"history":{"nodes":[
						{"oid":"aaa111","message":"first","url":"https://github.com/alice/web/commit/aaa111",
						 "committedDate":"2024-03-05T10:00:00Z","changedFiles":2,"additions":10,"deletions":3}
					]}}},
					{"name":"feature","target":{"history":{"nodes":[
						{"oid":"aaa111","message":"first","url":"https://github.com/alice/web/commit/aaa111",
						 "committedDate":"2024-03-05T10:00:00Z","changedFiles":2,"additions":10,"deletions":3},
						{"oid":"bbb222","message":"second","url":"https://github.com/alice/web/commit/bbb222",
						 "committedDate":"2024-03-06T10:00:00Z","changedFiles":1,"additions":1,"deletions":0}
					]}}}
				],
				"pageInfo":{"endCursor":"r1","hasNextPage":true}}}}}`,
			`{"data":{"repository":{"refs":{
				"nodes":[{"name":"v1-tag-like","target":{}}],
				"pageInfo":{"endCursor":"r2","hasNextPage":false}}}}}`,
		}}
		client := newClient(t, fake)

		commits := gt.R1(client.ListRepositoryCommits(ctx, "tok", &interfaces.ListRepositoryCommitsInput{
			Repository: repo,
			Email:      "alice@example.com",
			Since:      since,
		})).NoError(t)

		gt.A(t, commits).Length(3)
		gt.V(t, commits[0].SHA).Equal("aaa111")
		gt.V(t, commits[0].Branch.Name).Equal("main")
		gt.V(t, commits[0].Repository).Equal(*repo)
		gt.V(t, commits[0].ChangedFiles).Equal(2)
		gt.V(t, commits[0].Additions).Equal(10)
		gt.V(t, commits[0].Deletions).Equal(3)
		gt.True(t, commits[0].Date.Equal(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
		gt.V(t, commits[1].SHA).Equal("aaa111")
		gt.V(t, commits[1].Branch.Name).Equal("feature")
		gt.V(t, commits[2].Message).Equal("second")

		gt.A(t, fake.requests).Length(2)
		req := fake.requests[0]
		gt.S(t, req.Query).Contains(`refs(refPrefix: "refs/heads/", first: $refSize, after: $cursor)`)
		gt.S(t, req.Query).Contains("history(first: $historySize, author: {emails: [$email]}, since: $since)")
		gt.V(t, req.Variables["owner"]).Equal("alice")
		gt.V(t, req.Variables["name"]).Equal("web")
		gt.V(t, req.Variables["email"]).Equal("alice@example.com")
		gt.V(t, req.Variables["refSize"]).Equal(float64(100))
		gt.V(t, req.Variables["historySize"]).Equal(float64(100))
		gt.V(t, req.Variables["cursor"]).Equal(nil)
		gt.True(t, strings.HasPrefix(req.Variables["since"].(string), "2024-03-01T12:00:00"))
		gt.V(t, fake.requests[1].Variables["cursor"]).Equal("r1")
	})

	t.Run("401 is unauthenticated", func(t *testing.T) {
		fake := &fakeGraphQL{t: t, status: http.StatusUnauthorized}
		_, err := newClient(t, fake).ListRepositoryCommits(ctx, "tok", &interfaces.ListRepositoryCommitsInput{
			Repository: repo, Email: "alice@example.com", Since: since,
		})
		gt.True(t, errors.Is(err, types.ErrUnauthenticated))
	})

	t.Run("invalid input is rejected before querying", func(t *testing.T) {
		fake := &fakeGraphQL{t: t}
		client := newClient(t, fake)

		_, err := client.ListRepositoryCommits(ctx, "tok", &interfaces.ListRepositoryCommitsInput{Repository: repo})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))

		_, err = client.ListRepositoryCommits(ctx, "tok", &interfaces.ListRepositoryCommitsInput{
			Repository: &model.Repository{Name: "web"}, Email: "alice@example.com",
		})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))

		_, err = client.ListRepositoryCommits(ctx, "tok", nil)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))

		gt.A(t, fake.requests).Length(0)
	})
}
