package model

import (
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
)

var sampleRepository = Repository{
	Name:  "sample",
	URL:   "https://github.com/sample/sample",
	Owner: Owner{Login: "sample"},
}

// SampleCommits returns the fixed dataset served in mock mode. A fresh copy
// is built on every call.
func SampleCommits() []*Commit {
	entries := []struct {
		sha  types.CommitSHA
		date time.Time
	}{
		{"8151325dcdbae9e0ff95f9f9658432dbedfdb209", time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"1ff0b5b1c089d0f9e040a9080110e0be12d42867", time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"4e62e3ce2345b54c54af1490a7f3ca6e0254e082", time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"96c567e0473ae888602f6745da6a5953df25d673", time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	commits := make([]*Commit, 0, len(entries))
	for _, e := range entries {
		commits = append(commits, &Commit{
			CommitDetail: CommitDetail{
				SHA:          e.sha,
				URL:          sampleRepository.URL + "/commit/" + string(e.sha),
				Message:      "sample commit",
				Date:         e.date,
				ChangedFiles: 10,
				Additions:    100,
				Deletions:    100,
			},
			Repository: sampleRepository,
			Branches:   []Branch{{Name: "master"}},
		})
	}
	return commits
}
