package model

import (
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
)

// CommitDetail is the part of a commit that is identical wherever the commit is found
type CommitDetail struct {
	SHA          types.CommitSHA `json:"sha"`
	URL          string          `json:"url"`
	Message      string          `json:"message"`
	Date         time.Time       `json:"date"`
	ChangedFiles int             `json:"changedFiles"`
	Additions    int             `json:"additions"`
	Deletions    int             `json:"deletions"`
}

// BranchCommit is a commit as found on one branch of one repository.
type BranchCommit struct {
	CommitDetail
	Repository Repository `json:"repository"`
	Branch     Branch     `json:"branch"`
}

// Commit is an aggregated commit. Branches lists every branch the commit was found on.
type Commit struct {
	CommitDetail
	Repository Repository `json:"repository"`
	Branches   []Branch   `json:"branches"`
}
