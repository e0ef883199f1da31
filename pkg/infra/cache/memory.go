package cache

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
)

type memoryEntry struct {
	commits   []*model.Commit
	expiresAt time.Time
}

// Memory keeps commit lists in process memory. Entries are copied on the way in
// and out so callers can modify what they get.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*memoryEntry
}

var _ interfaces.CommitCache = (*Memory)(nil)

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
	}
}

func (x *Memory) Get(ctx context.Context, key string) ([]*model.Commit, error) {
	x.mu.RLock()
	entry, ok := x.entries[key]
	x.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !logging.CtxTime(ctx).Before(entry.expiresAt) {
		x.mu.Lock()
		if cur, ok := x.entries[key]; ok && cur == entry {
			delete(x.entries, key)
		}
		x.mu.Unlock()
		return nil, nil
	}

	return copyCommits(entry.commits), nil
}

func (x *Memory) Set(ctx context.Context, key string, commits []*model.Commit) error {
	entry := &memoryEntry{
		commits:   copyCommits(commits),
		expiresAt: logging.CtxTime(ctx).Add(x.ttl),
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	now := logging.CtxTime(ctx)
	for k, e := range x.entries {
		if !now.Before(e.expiresAt) {
			delete(x.entries, k)
		}
	}
	x.entries[key] = entry

	return nil
}

func copyCommits(commits []*model.Commit) []*model.Commit {
	cpy := make([]*model.Commit, 0, len(commits))
	for _, c := range commits {
		if c == nil {
			continue
		}
		commit := *c
		commit.Branches = append([]model.Branch(nil), c.Branches...)
		cpy = append(cpy, &commit)
	}
	return cpy
}
