package client

import (
	"testing"
)

func TestCacheSetGet(t *testing.T) {
	c := NewQueryCache()
	if _, ok := c.Get("tasks:2026-02-10"); ok {
		t.Fatal("cold key should miss")
	}
	c.Set("tasks:2026-02-10", []string{"a"})
	v, ok := c.Get("tasks:2026-02-10")
	if !ok || len(v.([]string)) != 1 {
		t.Fatalf("get after set: %v %v", v, ok)
	}
}

func TestCacheOptimisticRollback(t *testing.T) {
	c := NewQueryCache()
	c.Set("subjects", "server-state")

	c.SetOptimistic("subjects", "optimistic-1")
	c.SetOptimistic("subjects", "optimistic-2")
	if v, _ := c.Get("subjects"); v != "optimistic-2" {
		t.Fatalf("optimistic value not visible: %v", v)
	}

	// Rollback returns to the pre-mutation state, not the intermediate one.
	c.Rollback("subjects")
	if v, _ := c.Get("subjects"); v != "server-state" {
		t.Fatalf("rollback should restore the original value, got %v", v)
	}

	// A second rollback with nothing pending changes nothing.
	c.Rollback("subjects")
	if v, _ := c.Get("subjects"); v != "server-state" {
		t.Fatalf("idle rollback mutated the cache: %v", v)
	}
}

func TestCacheOptimisticOnColdKeyRollsBackToMiss(t *testing.T) {
	c := NewQueryCache()
	c.SetOptimistic("preferences:x", "draft")
	c.Rollback("preferences:x")
	if _, ok := c.Get("preferences:x"); ok {
		t.Fatal("rollback of a cold key should remove the entry")
	}
}

func TestCacheCommitKeepsOptimisticValue(t *testing.T) {
	c := NewQueryCache()
	c.Set("subjects", "old")
	c.SetOptimistic("subjects", "new")
	c.Commit("subjects")
	c.Rollback("subjects")
	if v, _ := c.Get("subjects"); v != "new" {
		t.Fatalf("rollback after commit should be a no-op, got %v", v)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewQueryCache()
	c.Set("a", 1)
	c.Set("b", 2)
	c.Invalidate("a", "b")
	if _, ok := c.Get("a"); ok {
		t.Fatal("invalidated key should miss")
	}
	if _, ok := c.Get("b"); ok {
		t.Fatal("invalidated key should miss")
	}
}
