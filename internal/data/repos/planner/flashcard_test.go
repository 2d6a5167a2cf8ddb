package planner

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/data/repos/testutil"
	"github.com/yungbote/studyhall-backend/internal/domain/planner"
)

func TestFlashcardSetListBySubject(t *testing.T) {
	dbc, db := testDB(t)
	log := testutil.Logger(t)
	subjects := NewSubjectRepo(db, log)
	sets := NewFlashcardSetRepo(db, log)

	math := mustSubject(t, dbc, subjects, "Algebra")
	bio := mustSubject(t, dbc, subjects, "Biology")

	if _, err := sets.Create(dbc, &planner.FlashcardSet{SubjectID: math.ID, Title: "Factoring"}); err != nil {
		t.Fatalf("create set: %v", err)
	}
	if _, err := sets.Create(dbc, &planner.FlashcardSet{SubjectID: bio.ID, Title: "Genetics"}); err != nil {
		t.Fatalf("create set: %v", err)
	}

	all, err := sets.ListAll(dbc)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(all))
	}

	onlyMath, err := sets.ListBySubject(dbc, math.ID)
	if err != nil {
		t.Fatalf("ListBySubject: %v", err)
	}
	if len(onlyMath) != 1 || onlyMath[0].Title != "Factoring" {
		t.Fatalf("subject filter went wrong: %+v", onlyMath)
	}
}

func TestFlashcardOrderingWithinSet(t *testing.T) {
	dbc, db := testDB(t)
	log := testutil.Logger(t)
	subjects := NewSubjectRepo(db, log)
	sets := NewFlashcardSetRepo(db, log)
	cards := NewFlashcardRepo(db, log)

	subject := mustSubject(t, dbc, subjects, "Spanish")
	set, err := sets.Create(dbc, &planner.FlashcardSet{SubjectID: subject.ID, Title: "Verbs"})
	if err != nil {
		t.Fatalf("create set: %v", err)
	}

	max, err := cards.MaxOrder(dbc, set.ID)
	if err != nil {
		t.Fatalf("MaxOrder: %v", err)
	}
	if max != -1 {
		t.Fatalf("empty set max = %d, want -1", max)
	}

	for i, front := range []string{"hablar", "comer", "vivir"} {
		if _, err := cards.Create(dbc, &planner.Flashcard{SetID: set.ID, Front: front, Back: "...", SortOrder: i}); err != nil {
			t.Fatalf("create card %s: %v", front, err)
		}
	}

	rows, err := cards.ListBySet(dbc, set.ID)
	if err != nil {
		t.Fatalf("ListBySet: %v", err)
	}
	if len(rows) != 3 || rows[0].Front != "hablar" || rows[2].Front != "vivir" {
		t.Fatalf("cards out of order: %+v", rows)
	}

	max, err = cards.MaxOrder(dbc, set.ID)
	if err != nil {
		t.Fatalf("MaxOrder: %v", err)
	}
	if max != 2 {
		t.Fatalf("max = %d, want 2", max)
	}
}

func TestFlashcardSetDeleteRemovesCards(t *testing.T) {
	dbc, db := testDB(t)
	log := testutil.Logger(t)
	subjects := NewSubjectRepo(db, log)
	sets := NewFlashcardSetRepo(db, log)
	cards := NewFlashcardRepo(db, log)

	subject := mustSubject(t, dbc, subjects, "History")
	set, err := sets.Create(dbc, &planner.FlashcardSet{SubjectID: subject.ID, Title: "Dates"})
	if err != nil {
		t.Fatalf("create set: %v", err)
	}
	card, err := cards.Create(dbc, &planner.Flashcard{SetID: set.ID, Front: "1066", Back: "Hastings"})
	if err != nil {
		t.Fatalf("create card: %v", err)
	}

	if err := sets.Delete(dbc, set.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := cards.GetByID(dbc, card.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("card should be gone, got %v", err)
	}
	if err := sets.Delete(dbc, set.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}
