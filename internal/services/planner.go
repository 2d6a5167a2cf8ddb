package services

import (
	"time"

	"github.com/google/uuid"

	plannerRepos "github.com/yungbote/studyhall-backend/internal/data/repos/planner"
	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

// PlannerService covers subjects, calendar events, and tasks. Mostly thin
// pass-through to the repos; the only real logic is task order assignment.
type PlannerService interface {
	ListSubjects(dbc dbctx.Context) ([]*planner.Subject, error)
	CreateSubject(dbc dbctx.Context, row *planner.Subject) (*planner.Subject, error)
	UpdateSubject(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Subject, error)
	DeleteSubject(dbc dbctx.Context, id uuid.UUID) error

	ListEventsByMonth(dbc dbctx.Context, year, month int) ([]*planner.CalendarEvent, error)
	ListUpcomingEvents(dbc dbctx.Context, limit int) ([]*planner.CalendarEvent, error)
	CreateEvent(dbc dbctx.Context, row *planner.CalendarEvent) (*planner.CalendarEvent, error)
	UpdateEvent(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.CalendarEvent, error)
	DeleteEvent(dbc dbctx.Context, id uuid.UUID) error

	ListTasksByDate(dbc dbctx.Context, date string) ([]*planner.Task, error)
	// CreateTask appends to the date's list when no explicit order is given:
	// max order for the date plus one, 0 for the first task.
	CreateTask(dbc dbctx.Context, row *planner.Task, hasOrder bool) (*planner.Task, error)
	UpdateTask(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Task, error)
	DeleteTask(dbc dbctx.Context, id uuid.UUID) error
}

type plannerService struct {
	log      *logger.Logger
	subjects plannerRepos.SubjectRepo
	events   plannerRepos.EventRepo
	tasks    plannerRepos.TaskRepo
	today    func() string
}

func NewPlannerService(
	log *logger.Logger,
	subjectRepo plannerRepos.SubjectRepo,
	eventRepo plannerRepos.EventRepo,
	taskRepo plannerRepos.TaskRepo,
) PlannerService {
	return &plannerService{
		log:      log.With("service", "PlannerService"),
		subjects: subjectRepo,
		events:   eventRepo,
		tasks:    taskRepo,
		today:    func() string { return time.Now().Format("2006-01-02") },
	}
}

func (s *plannerService) ListSubjects(dbc dbctx.Context) ([]*planner.Subject, error) {
	return s.subjects.List(dbc)
}

func (s *plannerService) CreateSubject(dbc dbctx.Context, row *planner.Subject) (*planner.Subject, error) {
	return s.subjects.Create(dbc, row)
}

func (s *plannerService) UpdateSubject(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Subject, error) {
	return s.subjects.UpdateFields(dbc, id, updates)
}

func (s *plannerService) DeleteSubject(dbc dbctx.Context, id uuid.UUID) error {
	return s.subjects.Delete(dbc, id)
}

func (s *plannerService) ListEventsByMonth(dbc dbctx.Context, year, month int) ([]*planner.CalendarEvent, error) {
	return s.events.ListByMonth(dbc, year, month)
}

func (s *plannerService) ListUpcomingEvents(dbc dbctx.Context, limit int) ([]*planner.CalendarEvent, error) {
	return s.events.ListUpcoming(dbc, s.today(), limit)
}

func (s *plannerService) CreateEvent(dbc dbctx.Context, row *planner.CalendarEvent) (*planner.CalendarEvent, error) {
	return s.events.Create(dbc, row)
}

func (s *plannerService) UpdateEvent(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.CalendarEvent, error) {
	return s.events.UpdateFields(dbc, id, updates)
}

func (s *plannerService) DeleteEvent(dbc dbctx.Context, id uuid.UUID) error {
	return s.events.Delete(dbc, id)
}

func (s *plannerService) ListTasksByDate(dbc dbctx.Context, date string) ([]*planner.Task, error) {
	return s.tasks.ListByDate(dbc, date)
}

func (s *plannerService) CreateTask(dbc dbctx.Context, row *planner.Task, hasOrder bool) (*planner.Task, error) {
	if !hasOrder {
		max, err := s.tasks.MaxOrder(dbc, row.Date)
		if err != nil {
			return nil, err
		}
		row.SortOrder = max + 1
	}
	return s.tasks.Create(dbc, row)
}

func (s *plannerService) UpdateTask(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Task, error) {
	return s.tasks.UpdateFields(dbc, id, updates)
}

func (s *plannerService) DeleteTask(dbc dbctx.Context, id uuid.UUID) error {
	return s.tasks.Delete(dbc, id)
}
