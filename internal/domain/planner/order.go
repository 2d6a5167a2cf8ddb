package planner

import (
	"sort"

	"github.com/google/uuid"
)

// OrderChange is one task whose sort key must be rewritten after a reorder.
type OrderChange struct {
	ID        uuid.UUID
	SortOrder int
}

// SplitByCompletion partitions tasks into incomplete and completed, each
// sorted ascending by SortOrder. The sort is stable so tasks sharing a value
// keep their stored relative order.
func SplitByCompletion(tasks []Task) (incomplete, completed []Task) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	sort.SliceStable(incomplete, func(i, j int) bool { return incomplete[i].SortOrder < incomplete[j].SortOrder })
	sort.SliceStable(completed, func(i, j int) bool { return completed[i].SortOrder < completed[j].SortOrder })
	return incomplete, completed
}

// ComputeReorder moves the item at index from to index to within the
// incomplete subsequence and reassigns consecutive sort keys starting at 0 to
// match the new visual order. Only tasks whose key actually changes are
// returned, so an unchanged task is never written. A drop onto the source
// position is a no-op and returns nil before any computation.
func ComputeReorder(incomplete []Task, from, to int) []OrderChange {
	if from == to {
		return nil
	}
	n := len(incomplete)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil
	}

	reordered := make([]Task, 0, n)
	reordered = append(reordered, incomplete[:from]...)
	reordered = append(reordered, incomplete[from+1:]...)
	reordered = append(reordered[:to], append([]Task{incomplete[from]}, reordered[to:]...)...)

	var changes []OrderChange
	for i, t := range reordered {
		if t.SortOrder != i {
			changes = append(changes, OrderChange{ID: t.ID, SortOrder: i})
		}
	}
	return changes
}

// NextOrder returns the sort key for a task appended to the given date's
// list: one past the maximum across ALL tasks for the date, completed
// included. The max of an empty set is -1, so the first task gets 0.
func NextOrder(tasks []Task) int {
	max := -1
	for _, t := range tasks {
		if t.SortOrder > max {
			max = t.SortOrder
		}
	}
	return max + 1
}
