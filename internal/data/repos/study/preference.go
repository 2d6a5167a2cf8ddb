package study

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type PreferenceRepo interface {
	GetBySubject(dbc dbctx.Context, subjectID uuid.UUID) (*study.LearningPreference, error)
	// Upsert writes the preference for its subject. When a row already
	// exists it is updated in place, keeping the original row id.
	Upsert(dbc dbctx.Context, row *study.LearningPreference) (*study.LearningPreference, error)
}

type preferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPreferenceRepo(db *gorm.DB, log *logger.Logger) PreferenceRepo {
	return &preferenceRepo{db: db, log: log.With("repo", "PreferenceRepo")}
}

func (r *preferenceRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *preferenceRepo) GetBySubject(dbc dbctx.Context, subjectID uuid.UUID) (*study.LearningPreference, error) {
	if subjectID == uuid.Nil {
		return nil, fmt.Errorf("missing subject id")
	}
	var row study.LearningPreference
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		First(&row, "subject_id = ?", subjectID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *preferenceRepo) Upsert(dbc dbctx.Context, row *study.LearningPreference) (*study.LearningPreference, error) {
	if row == nil || row.SubjectID == uuid.Nil {
		return nil, fmt.Errorf("missing subject id")
	}
	err := r.conn(dbc).WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "subject_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"explanation_style",
				"complexity_level",
				"custom_instructions",
				"updated_at",
			}),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}
	// Re-read so the caller sees the surviving row id on the update path.
	saved, err := r.GetBySubject(dbc, row.SubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return row, nil
		}
		return nil, err
	}
	return saved, nil
}
