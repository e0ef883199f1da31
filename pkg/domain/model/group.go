package model

import (
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type GroupBy string

const (
	GroupByDate       GroupBy = "date"
	GroupByWeek       GroupBy = "week"
	GroupByRepository GroupBy = "repository"
)

const groupDateLayout = "2006.01.02"

func (x GroupBy) Validate() error {
	switch x {
	case GroupByDate, GroupByWeek, GroupByRepository:
		return nil
	}
	return goerr.Wrap(types.ErrValidationFailed, "invalid group by", goerr.V("groupBy", x))
}

type CommitGroup struct {
	Key     string    `json:"key"`
	Commits []*Commit `json:"commits"`
}

// GroupCommits splits commits into groups keyed by day, week (starting on
// Sunday) or repository. Groups appear in the order their key is first seen
// and commits keep their input order inside a group. Dates are bucketed in loc.
func GroupCommits(commits []*Commit, by GroupBy, loc *time.Location) []*CommitGroup {
	if loc == nil {
		loc = time.UTC
	}

	var groups []*CommitGroup
	index := make(map[string]*CommitGroup)

	for _, commit := range commits {
		key := groupKey(commit, by, loc)
		group, ok := index[key]
		if !ok {
			group = &CommitGroup{Key: key}
			index[key] = group
			groups = append(groups, group)
		}
		group.Commits = append(group.Commits, commit)
	}

	return groups
}

func groupKey(commit *Commit, by GroupBy, loc *time.Location) string {
	switch by {
	case GroupByWeek:
		return startOfWeek(commit.Date.In(loc)).Format(groupDateLayout)
	case GroupByRepository:
		return commit.Repository.FullName()
	default:
		return commit.Date.In(loc).Format(groupDateLayout)
	}
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
