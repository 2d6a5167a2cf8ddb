package planner

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type FlashcardSetRepo interface {
	ListAll(dbc dbctx.Context) ([]*planner.FlashcardSet, error)
	ListBySubject(dbc dbctx.Context, subjectID uuid.UUID) ([]*planner.FlashcardSet, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.FlashcardSet, error)
	Create(dbc dbctx.Context, row *planner.FlashcardSet) (*planner.FlashcardSet, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.FlashcardSet, error)
	// Delete removes the set and its cards in one transaction.
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type flashcardSetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFlashcardSetRepo(db *gorm.DB, log *logger.Logger) FlashcardSetRepo {
	return &flashcardSetRepo{db: db, log: log.With("repo", "FlashcardSetRepo")}
}

func (r *flashcardSetRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *flashcardSetRepo) ListAll(dbc dbctx.Context) ([]*planner.FlashcardSet, error) {
	var out []*planner.FlashcardSet
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.FlashcardSet{}).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *flashcardSetRepo) ListBySubject(dbc dbctx.Context, subjectID uuid.UUID) ([]*planner.FlashcardSet, error) {
	if subjectID == uuid.Nil {
		return nil, fmt.Errorf("missing subject id")
	}
	var out []*planner.FlashcardSet
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.FlashcardSet{}).
		Where("subject_id = ?", subjectID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *flashcardSetRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.FlashcardSet, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing set id")
	}
	var row planner.FlashcardSet
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *flashcardSetRepo) Create(dbc dbctx.Context, row *planner.FlashcardSet) (*planner.FlashcardSet, error) {
	if err := r.conn(dbc).WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *flashcardSetRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.FlashcardSet, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing set id")
	}
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.FlashcardSet{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(dbc, id)
}

func (r *flashcardSetRepo) Delete(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing set id")
	}
	return r.conn(dbc).WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&planner.FlashcardSet{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("set_id = ?", id).Delete(&planner.Flashcard{}).Error
	})
}

type FlashcardRepo interface {
	ListBySet(dbc dbctx.Context, setID uuid.UUID) ([]*planner.Flashcard, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.Flashcard, error)
	// MaxOrder mirrors TaskRepo.MaxOrder, scoped to the set: -1 when empty.
	MaxOrder(dbc dbctx.Context, setID uuid.UUID) (int, error)
	Create(dbc dbctx.Context, row *planner.Flashcard) (*planner.Flashcard, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Flashcard, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type flashcardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFlashcardRepo(db *gorm.DB, log *logger.Logger) FlashcardRepo {
	return &flashcardRepo{db: db, log: log.With("repo", "FlashcardRepo")}
}

func (r *flashcardRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *flashcardRepo) ListBySet(dbc dbctx.Context, setID uuid.UUID) ([]*planner.Flashcard, error) {
	if setID == uuid.Nil {
		return nil, fmt.Errorf("missing set id")
	}
	var out []*planner.Flashcard
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.Flashcard{}).
		Where("set_id = ?", setID).
		Order("sort_order ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *flashcardRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.Flashcard, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing flashcard id")
	}
	var row planner.Flashcard
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *flashcardRepo) MaxOrder(dbc dbctx.Context, setID uuid.UUID) (int, error) {
	if setID == uuid.Nil {
		return 0, fmt.Errorf("missing set id")
	}
	var max int
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.Flashcard{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Where("set_id = ?", setID).
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}

func (r *flashcardRepo) Create(dbc dbctx.Context, row *planner.Flashcard) (*planner.Flashcard, error) {
	if err := r.conn(dbc).WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *flashcardRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Flashcard, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing flashcard id")
	}
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.Flashcard{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(dbc, id)
}

func (r *flashcardRepo) Delete(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing flashcard id")
	}
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Delete(&planner.Flashcard{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
