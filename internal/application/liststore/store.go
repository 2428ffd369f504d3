// Package liststore caches paginated server listings per query key and keeps
// them honest by invalidating a branch's pages after every successful write.
package liststore

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/sangkips/kasir/pkg/pagination"
	"golang.org/x/sync/singleflight"
)

// Key addresses one cached page. Two queries share a cache entry only when
// every field is equal.
type Key struct {
	Resource string
	Branch   string
	Page     int
	Limit    int
	Status   string
	Type     string
	Category string
}

// Fetcher loads one page from the server
type Fetcher[T any] func(ctx context.Context, key Key) ([]T, *pagination.Pagination, error)

// Result is what a query observes. Err is never cached.
type Result[T any] struct {
	Records    []T
	Pagination *pagination.Pagination
	IsLoading  bool
	Err        error
}

// DefaultTTL is how long a page is served from cache when no WithTTL is given
const DefaultTTL = 10 * time.Minute

type page[T any] struct {
	records    []T
	pagination *pagination.Pagination
	fetchedAt  time.Time
}

// Store is a read-through cache for one resource
type Store[T any] struct {
	resource string
	fetch    Fetcher[T]
	timeout  time.Duration
	ttl      time.Duration
	now      func() time.Time

	mu          sync.Mutex
	entries     map[Key]page[T]
	scopes      map[string]map[Key]struct{}
	generations map[string]uint64
	inflight    map[Key]int

	group singleflight.Group
}

// Option configures a Store
type Option func(*storeOptions)

type storeOptions struct {
	timeout time.Duration
	ttl     time.Duration
}

// WithFetchTimeout bounds a shared fetch that has outlived its callers
func WithFetchTimeout(d time.Duration) Option {
	return func(o *storeOptions) { o.timeout = d }
}

// WithTTL sets how long a fetched page stays cached. Zero or less keeps pages
// until the branch is invalidated.
func WithTTL(d time.Duration) Option {
	return func(o *storeOptions) { o.ttl = d }
}

// New creates a store for resource backed by fetch
func New[T any](resource string, fetch Fetcher[T], opts ...Option) *Store[T] {
	o := storeOptions{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		resource:    resource,
		fetch:       fetch,
		timeout:     o.timeout,
		ttl:         o.ttl,
		now:         time.Now,
		entries:     make(map[Key]page[T]),
		scopes:      make(map[string]map[Key]struct{}),
		generations: make(map[string]uint64),
		inflight:    make(map[Key]int),
	}
}

// Query returns the cached page for key or fetches it. Concurrent identical
// queries share one fetch. A caller whose ctx ends stops waiting; the fetch
// itself continues and may still fill the cache.
func (s *Store[T]) Query(ctx context.Context, key Key) Result[T] {
	key.Resource = s.resource

	s.mu.Lock()
	if cached, ok := s.entries[key]; ok && s.fresh(cached) {
		s.mu.Unlock()
		return Result[T]{Records: cached.records, Pagination: cached.pagination}
	}
	gen := s.generations[key.Branch]
	s.mu.Unlock()

	flight := s.group.DoChan(fmt.Sprintf("%+v@%d", key, gen), func() (interface{}, error) {
		return s.load(ctx, key, gen)
	})

	select {
	case <-ctx.Done():
		return Result[T]{IsLoading: true, Err: apperror.NewNetworkError(ctx.Err())}
	case res := <-flight:
		if res.Err != nil {
			return Result[T]{Err: res.Err}
		}
		loaded := res.Val.(page[T])
		return Result[T]{Records: loaded.records, Pagination: loaded.pagination}
	}
}

func (s *Store[T]) load(ctx context.Context, key Key, gen uint64) (page[T], error) {
	s.mu.Lock()
	// A flight that finished between the cache check and DoChan already stored it
	if cached, ok := s.entries[key]; ok && s.fresh(cached) && s.generations[key.Branch] == gen {
		s.mu.Unlock()
		return cached, nil
	}
	s.inflight[key]++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.inflight[key]--; s.inflight[key] <= 0 {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
	}()

	fetchCtx := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(fetchCtx, s.timeout)
		defer cancel()
	}

	records, pg, err := s.fetch(fetchCtx, key)
	if err != nil {
		log.Printf("[liststore] %s branch=%q page=%d: %v", s.resource, key.Branch, key.Page, err)
		return page[T]{}, err
	}
	if records == nil {
		records = []T{}
	}
	loaded := page[T]{records: records, pagination: pg, fetchedAt: s.now()}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Invalidated while fetching: hand the result to the waiting callers but
	// do not cache it.
	if s.generations[key.Branch] != gen {
		return loaded, nil
	}
	s.sweepExpired()
	s.entries[key] = loaded
	if s.scopes[key.Branch] == nil {
		s.scopes[key.Branch] = make(map[Key]struct{})
	}
	s.scopes[key.Branch][key] = struct{}{}
	return loaded, nil
}

// Peek returns what is cached for key without fetching
func (s *Store[T]) Peek(key Key) Result[T] {
	key.Resource = s.resource

	s.mu.Lock()
	defer s.mu.Unlock()

	res := Result[T]{IsLoading: s.inflight[key] > 0}
	if cached, ok := s.entries[key]; ok && s.fresh(cached) {
		res.Records = cached.records
		res.Pagination = cached.pagination
	}
	return res
}

// Mutate runs a write and, when it succeeds, invalidates every cached page
// of branch. There is no optimistic update.
func (s *Store[T]) Mutate(ctx context.Context, branch string, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	s.Invalidate(branch)
	return nil
}

// MutateWith is Mutate for writes that return the created or updated record
func MutateWith[T, R any](ctx context.Context, s *Store[T], branch string, fn func(ctx context.Context) (R, error)) (R, error) {
	var out R
	err := s.Mutate(ctx, branch, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

// Invalidate drops every cached page of branch. Queries issued afterwards
// fetch again, even while an older fetch is still running.
func (s *Store[T]) Invalidate(branch string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generations[branch]++
	for key := range s.scopes[branch] {
		delete(s.entries, key)
	}
	delete(s.scopes, branch)
}

// Len reports how many pages are cached, expired ones included
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store[T]) fresh(p page[T]) bool {
	return s.ttl <= 0 || s.now().Sub(p.fetchedAt) < s.ttl
}

// sweepExpired drops stale pages so keys that are never asked for again do
// not pile up. Caller holds s.mu.
func (s *Store[T]) sweepExpired() {
	if s.ttl <= 0 {
		return
	}
	for key, p := range s.entries {
		if s.fresh(p) {
			continue
		}
		delete(s.entries, key)
		if scope := s.scopes[key.Branch]; scope != nil {
			delete(scope, key)
			if len(scope) == 0 {
				delete(s.scopes, key.Branch)
			}
		}
	}
}
