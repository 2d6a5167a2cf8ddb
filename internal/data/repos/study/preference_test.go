package study

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/data/repos/testutil"
	"github.com/yungbote/studyhall-backend/internal/domain/study"
)

func TestPreferenceUpsertKeepsRowIdentity(t *testing.T) {
	dbc, db := testDB(t)
	repo := NewPreferenceRepo(db, testutil.Logger(t))
	subjectID := uuid.New()

	first, err := repo.Upsert(dbc, &study.LearningPreference{
		SubjectID:        subjectID,
		ExplanationStyle: study.StyleStepByStep,
		ComplexityLevel:  study.LevelBeginner,
	})
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	second, err := repo.Upsert(dbc, &study.LearningPreference{
		SubjectID:          subjectID,
		ExplanationStyle:   study.StyleSocratic,
		ComplexityLevel:    study.LevelAdvanced,
		CustomInstructions: "use chess examples",
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert should keep the original row id: %s vs %s", first.ID, second.ID)
	}
	if second.ExplanationStyle != study.StyleSocratic || second.ComplexityLevel != study.LevelAdvanced {
		t.Fatalf("fields not updated: %+v", second)
	}
	if second.CustomInstructions != "use chess examples" {
		t.Fatalf("custom instructions = %q", second.CustomInstructions)
	}

	var count int64
	if err := db.Model(&study.LearningPreference{}).Where("subject_id = ?", subjectID).Count(&count).Error; err != nil {
		t.Fatalf("count preferences: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row per subject, got %d", count)
	}
}

func TestPreferenceGetBySubjectNotFound(t *testing.T) {
	dbc, db := testDB(t)
	repo := NewPreferenceRepo(db, testutil.Logger(t))

	if _, err := repo.GetBySubject(dbc, uuid.New()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
