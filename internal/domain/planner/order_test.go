package planner

import (
	"testing"

	"github.com/google/uuid"
)

func taskList(orders ...int) []Task {
	tasks := make([]Task, len(orders))
	for i, o := range orders {
		tasks[i] = Task{ID: uuid.New(), SortOrder: o}
	}
	return tasks
}

func TestSplitByCompletion(t *testing.T) {
	tasks := []Task{
		{ID: uuid.New(), SortOrder: 2, Completed: true},
		{ID: uuid.New(), SortOrder: 0},
		{ID: uuid.New(), SortOrder: 1, Completed: true},
		{ID: uuid.New(), SortOrder: 3},
	}
	incomplete, completed := SplitByCompletion(tasks)
	if len(incomplete) != 2 || len(completed) != 2 {
		t.Fatalf("split = %d/%d, want 2/2", len(incomplete), len(completed))
	}
	if incomplete[0].SortOrder != 0 || incomplete[1].SortOrder != 3 {
		t.Fatal("incomplete tasks should be sorted ascending")
	}
	if completed[0].SortOrder != 1 || completed[1].SortOrder != 2 {
		t.Fatal("completed tasks should be sorted ascending")
	}
}

func TestComputeReorderNoOp(t *testing.T) {
	tasks := taskList(0, 1, 2)
	if got := ComputeReorder(tasks, 1, 1); got != nil {
		t.Fatalf("same-position drop should return nil, got %v", got)
	}
}

func TestComputeReorderOutOfRange(t *testing.T) {
	tasks := taskList(0, 1)
	if got := ComputeReorder(tasks, 0, 5); got != nil {
		t.Fatalf("out-of-range target should return nil, got %v", got)
	}
	if got := ComputeReorder(tasks, -1, 0); got != nil {
		t.Fatalf("negative source should return nil, got %v", got)
	}
}

func TestComputeReorderEmitsOnlyChanges(t *testing.T) {
	tasks := taskList(0, 1, 2, 3)
	changes := ComputeReorder(tasks, 3, 0)
	// Every position shifts: the moved task takes 0 and the rest slide down.
	if len(changes) != 4 {
		t.Fatalf("expected 4 changes, got %d", len(changes))
	}
	if changes[0].ID != tasks[3].ID || changes[0].SortOrder != 0 {
		t.Fatalf("moved task should land at 0, got %v", changes[0])
	}

	// Moving an adjacent pair only rewrites the two affected rows.
	tasks = taskList(0, 1, 2, 3)
	changes = ComputeReorder(tasks, 0, 1)
	if len(changes) != 2 {
		t.Fatalf("adjacent swap should rewrite 2 rows, got %d", len(changes))
	}
	for _, ch := range changes {
		if ch.SortOrder != 0 && ch.SortOrder != 1 {
			t.Fatalf("unexpected order %d in %v", ch.SortOrder, changes)
		}
	}
}

func TestComputeReorderWithGappedKeys(t *testing.T) {
	// Stored keys need not be consecutive; reorder compacts them to 0..n-1.
	tasks := taskList(0, 5, 9)
	changes := ComputeReorder(tasks, 2, 0)
	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(changes))
	}
	want := map[uuid.UUID]int{tasks[2].ID: 0, tasks[0].ID: 1, tasks[1].ID: 2}
	for _, ch := range changes {
		if want[ch.ID] != ch.SortOrder {
			t.Fatalf("task %s order = %d, want %d", ch.ID, ch.SortOrder, want[ch.ID])
		}
	}
}

func TestNextOrder(t *testing.T) {
	if got := NextOrder(nil); got != 0 {
		t.Fatalf("empty list next order = %d, want 0", got)
	}
	tasks := taskList(0, 7, 3)
	tasks[1].Completed = true
	if got := NextOrder(tasks); got != 8 {
		t.Fatalf("next order = %d, want 8 (completed tasks count)", got)
	}
}
