// Package cache is a small read-through cache for backend query results,
// keyed by logical query identity and invalidated by tag. Mutations fire
// Invalidate with the tags of the listings they touched; the next read for
// an invalidated key fetches fresh data.
package cache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultStaleTime is how long an entry is served without refetching.
	DefaultStaleTime = 30 * time.Second

	defaultSize = 256
)

type entry struct {
	value any
	tags  []string
}

// Store holds cached query results. It is safe for concurrent use; the
// backing store serializes its own access.
type Store struct {
	entries *lru.LRU[string, entry]
}

// New creates a Store with the given stale time. Zero means DefaultStaleTime.
func New(staleTime time.Duration) *Store {
	if staleTime == 0 {
		staleTime = DefaultStaleTime
	}
	return &Store{
		entries: lru.NewLRU[string, entry](defaultSize, nil, staleTime),
	}
}

// Invalidate drops every entry carrying any of the given tags. It is
// fire-and-forget: no refetch happens until the next read.
func (s *Store) Invalidate(tags ...string) {
	if len(tags) == 0 {
		return
	}
	tagSet := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tagSet[t] = struct{}{}
	}
	for _, key := range s.entries.Keys() {
		e, ok := s.entries.Peek(key)
		if !ok {
			continue
		}
		for _, t := range e.tags {
			if _, hit := tagSet[t]; hit {
				s.entries.Remove(key)
				break
			}
		}
	}
}

// Fetch returns the cached value for key, calling fn on a miss and storing
// the result under the given tags. Fetch errors are never cached.
func Fetch[T any](s *Store, key string, tags []string, fn func() (T, error)) (T, error) {
	if e, ok := s.entries.Get(key); ok {
		if v, ok := e.value.(T); ok {
			return v, nil
		}
	}
	v, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}
	s.entries.Add(key, entry{value: v, tags: tags})
	return v, nil
}

// Query keys and tags mirror the backend's logical listings.

// WorkspacesKey identifies the workspace list query.
func WorkspacesKey() string { return "workspaces" }

// WorkspaceKey identifies a single-workspace query.
func WorkspaceKey(id int64) string { return fmt.Sprintf("workspaces/%d", id) }

// FilesKey identifies a workspace's file-list query.
func FilesKey(workspaceID int64) string { return fmt.Sprintf("files/%d", workspaceID) }

// FileKey identifies a single-file query.
func FileKey(workspaceID, fileID int64) string {
	return fmt.Sprintf("files/%d/%d", workspaceID, fileID)
}

// WorkspacesTag covers the workspace list and all workspace details.
func WorkspacesTag() string { return "workspaces" }

// FilesTag covers every file query under one workspace.
func FilesTag(workspaceID int64) string { return fmt.Sprintf("files/%d", workspaceID) }
