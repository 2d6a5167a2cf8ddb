package planner

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type TaskRepo interface {
	ListByDate(dbc dbctx.Context, date string) ([]*planner.Task, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.Task, error)
	// MaxOrder returns the highest sort key among all tasks for the date,
	// completed included, or -1 when the date has no tasks.
	MaxOrder(dbc dbctx.Context, date string) (int, error)
	Create(dbc dbctx.Context, row *planner.Task) (*planner.Task, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Task, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type taskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepo(db *gorm.DB, log *logger.Logger) TaskRepo {
	return &taskRepo{db: db, log: log.With("repo", "TaskRepo")}
}

func (r *taskRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *taskRepo) ListByDate(dbc dbctx.Context, date string) ([]*planner.Task, error) {
	if date == "" {
		return nil, fmt.Errorf("missing date")
	}
	var out []*planner.Task
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.Task{}).
		Where("date = ?", date).
		Order("sort_order ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.Task, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing task id")
	}
	var row planner.Task
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *taskRepo) MaxOrder(dbc dbctx.Context, date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("missing date")
	}
	var max int
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.Task{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Where("date = ?", date).
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}

func (r *taskRepo) Create(dbc dbctx.Context, row *planner.Task) (*planner.Task, error) {
	if err := r.conn(dbc).WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *taskRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Task, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing task id")
	}
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.Task{}).
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

func (r *taskRepo) Delete(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing task id")
	}
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Delete(&planner.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
