package planner

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/data/repos/testutil"
	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
)

func mustEvent(t *testing.T, dbc dbctx.Context, repo EventRepo, title, date string) *planner.CalendarEvent {
	t.Helper()
	row, err := repo.Create(dbc, &planner.CalendarEvent{
		Title: title, Date: date, EventType: planner.EventTypeAssignment,
	})
	if err != nil {
		t.Fatalf("create event %s: %v", title, err)
	}
	return row
}

func TestEventListByMonth(t *testing.T) {
	dbc, db := testDB(t)
	repo := NewEventRepo(db, testutil.Logger(t))

	mustEvent(t, dbc, repo, "before", "2026-01-31")
	mustEvent(t, dbc, repo, "mid", "2026-02-14")
	mustEvent(t, dbc, repo, "first", "2026-02-01")
	mustEvent(t, dbc, repo, "last", "2026-02-28")
	mustEvent(t, dbc, repo, "after", "2026-03-01")

	rows, err := repo.ListByMonth(dbc, 2026, 2)
	if err != nil {
		t.Fatalf("ListByMonth: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 events in February, got %d", len(rows))
	}
	for i, want := range []string{"first", "mid", "last"} {
		if rows[i].Title != want {
			t.Fatalf("rows[%d] = %s, want %s", i, rows[i].Title, want)
		}
	}
}

func TestEventListByMonthValidation(t *testing.T) {
	dbc, db := testDB(t)
	repo := NewEventRepo(db, testutil.Logger(t))

	if _, err := repo.ListByMonth(dbc, 2026, 0); err == nil {
		t.Fatal("month 0 should be rejected")
	}
	if _, err := repo.ListByMonth(dbc, 2026, 13); err == nil {
		t.Fatal("month 13 should be rejected")
	}
}

func TestEventListUpcoming(t *testing.T) {
	dbc, db := testDB(t)
	repo := NewEventRepo(db, testutil.Logger(t))

	mustEvent(t, dbc, repo, "past", "2026-02-01")
	mustEvent(t, dbc, repo, "today", "2026-02-10")
	mustEvent(t, dbc, repo, "soon", "2026-02-12")
	mustEvent(t, dbc, repo, "later", "2026-04-01")

	rows, err := repo.ListUpcoming(dbc, "2026-02-10", 0)
	if err != nil {
		t.Fatalf("ListUpcoming: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 upcoming events, got %d", len(rows))
	}
	for i, want := range []string{"today", "soon", "later"} {
		if rows[i].Title != want {
			t.Fatalf("rows[%d] = %s, want %s", i, rows[i].Title, want)
		}
	}

	limited, err := repo.ListUpcoming(dbc, "2026-02-10", 2)
	if err != nil {
		t.Fatalf("ListUpcoming limited: %v", err)
	}
	if len(limited) != 2 || limited[1].Title != "soon" {
		t.Fatalf("limit 2 should keep the two nearest events, got %d", len(limited))
	}
}

func TestEventUpdateAndDelete(t *testing.T) {
	dbc, db := testDB(t)
	repo := NewEventRepo(db, testutil.Logger(t))
	row := mustEvent(t, dbc, repo, "Quiz", "2026-02-20")

	updated, err := repo.UpdateFields(dbc, row.ID, map[string]interface{}{
		"title": "Quiz 2", "event_type": planner.EventTypeQuiz,
	})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if updated.Title != "Quiz 2" || updated.EventType != planner.EventTypeQuiz || updated.Date != "2026-02-20" {
		t.Fatalf("update went wrong: %+v", updated)
	}

	if err := repo.Delete(dbc, row.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(dbc, row.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
	if _, err := repo.GetByID(dbc, uuid.New()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
