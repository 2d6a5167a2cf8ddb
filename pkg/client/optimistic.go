package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/domain/study"
)

// Mutate runs one optimistic write: apply transforms the cached value under
// key (the zero value of T when the key is cold), the result is shown
// immediately, then call performs the server write. A failed call restores
// the pre-mutation snapshot and returns the error; a successful one commits.
// In both cases the reconcile fetchers then refetch their keys, so the cache
// settles on whatever the server actually holds.
func Mutate[T any](ctx context.Context, cache *QueryCache, key string, apply func(T) T, call func(context.Context) error, reconcile map[string]Fetcher) error {
	var current T
	if v, ok := cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			current = typed
		}
	}
	cache.SetOptimistic(key, apply(current))

	callErr := call(ctx)
	if callErr != nil {
		cache.Rollback(key)
	} else {
		cache.Commit(key)
	}
	if err := Reconcile(ctx, cache, reconcile); err != nil && callErr == nil {
		return err
	}
	return callErr
}

// Fetcher loads the authoritative value for one cache key.
type Fetcher func(ctx context.Context) (any, error)

// Reconcile refetches the given keys in parallel and replaces the cached
// values, bringing optimistic state back in line with the server. The first
// fetch error cancels the rest; keys already fetched keep their new values.
func Reconcile(ctx context.Context, cache *QueryCache, fetchers map[string]Fetcher) error {
	g, ctx := errgroup.WithContext(ctx)
	for key, fetch := range fetchers {
		key, fetch := key, fetch
		g.Go(func() error {
			v, err := fetch(ctx)
			if err != nil {
				return err
			}
			cache.Set(key, v)
			return nil
		})
	}
	return g.Wait()
}

// Cache keys shared by the optimistic delete helpers.

func TasksKey(date string) string { return "tasks/" + date }

func MonthKey(year, month int) string { return fmt.Sprintf("calendar/%04d-%02d", year, month) }

func ConversationsKey(subjectID uuid.UUID) string {
	return "conversations/" + subjectID.String()
}

// DeleteTaskOptimistic removes the task from its cached day list immediately,
// issues the delete, and refetches the day whether or not the server accepted
// it.
func (c *Client) DeleteTaskOptimistic(ctx context.Context, cache *QueryCache, task planner.Task) error {
	key := TasksKey(task.Date)
	return Mutate(ctx, cache, key,
		func(old []planner.Task) []planner.Task {
			return without(old, func(t planner.Task) bool { return t.ID == task.ID })
		},
		func(ctx context.Context) error { return c.DeleteTask(ctx, task.ID) },
		map[string]Fetcher{key: func(ctx context.Context) (any, error) { return c.TasksByDate(ctx, task.Date) }},
	)
}

// DeleteEventOptimistic removes the event from its cached month and settles
// the month against the server afterwards.
func (c *Client) DeleteEventOptimistic(ctx context.Context, cache *QueryCache, event planner.CalendarEvent) error {
	year, month, err := splitMonth(event.Date)
	if err != nil {
		return err
	}
	key := MonthKey(year, month)
	return Mutate(ctx, cache, key,
		func(old []planner.CalendarEvent) []planner.CalendarEvent {
			return without(old, func(e planner.CalendarEvent) bool { return e.ID == event.ID })
		},
		func(ctx context.Context) error { return c.DeleteEvent(ctx, event.ID) },
		map[string]Fetcher{key: func(ctx context.Context) (any, error) { return c.EventsByMonth(ctx, year, month) }},
	)
}

// DeleteConversationOptimistic removes the conversation from its subject's
// cached list and settles the list against the server afterwards.
func (c *Client) DeleteConversationOptimistic(ctx context.Context, cache *QueryCache, conv study.Conversation) error {
	key := ConversationsKey(conv.SubjectID)
	return Mutate(ctx, cache, key,
		func(old []study.Conversation) []study.Conversation {
			return without(old, func(cv study.Conversation) bool { return cv.ID == conv.ID })
		},
		func(ctx context.Context) error { return c.DeleteConversation(ctx, conv.ID) },
		map[string]Fetcher{key: func(ctx context.Context) (any, error) { return c.Conversations(ctx, conv.SubjectID) }},
	)
}

func without[T any](rows []T, match func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if !match(r) {
			out = append(out, r)
		}
	}
	return out
}

func splitMonth(date string) (int, int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, 0, fmt.Errorf("parse event date %q: %w", date, err)
	}
	return t.Year(), int(t.Month()), nil
}
