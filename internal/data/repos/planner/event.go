package planner

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type EventRepo interface {
	ListByMonth(dbc dbctx.Context, year, month int) ([]*planner.CalendarEvent, error)
	ListUpcoming(dbc dbctx.Context, from string, limit int) ([]*planner.CalendarEvent, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.CalendarEvent, error)
	Create(dbc dbctx.Context, row *planner.CalendarEvent) (*planner.CalendarEvent, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.CalendarEvent, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, log *logger.Logger) EventRepo {
	return &eventRepo{db: db, log: log.With("repo", "EventRepo")}
}

func (r *eventRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *eventRepo) ListByMonth(dbc dbctx.Context, year, month int) ([]*planner.CalendarEvent, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	// Dates are YYYY-MM-DD text, so a lexicographic range covers the month.
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := fmt.Sprintf("%04d-%02d-31", year, month)

	var out []*planner.CalendarEvent
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.CalendarEvent{}).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepo) ListUpcoming(dbc dbctx.Context, from string, limit int) ([]*planner.CalendarEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var out []*planner.CalendarEvent
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.CalendarEvent{}).
		Where("date >= ?", from).
		Order("date ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.CalendarEvent, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing event id")
	}
	var row planner.CalendarEvent
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *eventRepo) Create(dbc dbctx.Context, row *planner.CalendarEvent) (*planner.CalendarEvent, error) {
	if err := r.conn(dbc).WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *eventRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.CalendarEvent, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing event id")
	}
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.CalendarEvent{}).
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

func (r *eventRepo) Delete(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing event id")
	}
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Delete(&planner.CalendarEvent{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
