package services

import (
	"github.com/google/uuid"

	plannerRepos "github.com/yungbote/studyhall-backend/internal/data/repos/planner"
	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type FlashcardService interface {
	ListSets(dbc dbctx.Context, subjectID *uuid.UUID) ([]*planner.FlashcardSet, error)
	CreateSet(dbc dbctx.Context, row *planner.FlashcardSet) (*planner.FlashcardSet, error)
	UpdateSet(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.FlashcardSet, error)
	DeleteSet(dbc dbctx.Context, id uuid.UUID) error

	ListCards(dbc dbctx.Context, setID uuid.UUID) ([]*planner.Flashcard, error)
	// CreateCard appends to the set when no explicit order is given.
	CreateCard(dbc dbctx.Context, row *planner.Flashcard, hasOrder bool) (*planner.Flashcard, error)
	UpdateCard(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Flashcard, error)
	DeleteCard(dbc dbctx.Context, id uuid.UUID) error
}

type flashcardService struct {
	log   *logger.Logger
	sets  plannerRepos.FlashcardSetRepo
	cards plannerRepos.FlashcardRepo
}

func NewFlashcardService(
	log *logger.Logger,
	setRepo plannerRepos.FlashcardSetRepo,
	cardRepo plannerRepos.FlashcardRepo,
) FlashcardService {
	return &flashcardService{
		log:   log.With("service", "FlashcardService"),
		sets:  setRepo,
		cards: cardRepo,
	}
}

func (s *flashcardService) ListSets(dbc dbctx.Context, subjectID *uuid.UUID) ([]*planner.FlashcardSet, error) {
	if subjectID != nil {
		return s.sets.ListBySubject(dbc, *subjectID)
	}
	return s.sets.ListAll(dbc)
}

func (s *flashcardService) CreateSet(dbc dbctx.Context, row *planner.FlashcardSet) (*planner.FlashcardSet, error) {
	return s.sets.Create(dbc, row)
}

func (s *flashcardService) UpdateSet(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.FlashcardSet, error) {
	return s.sets.UpdateFields(dbc, id, updates)
}

func (s *flashcardService) DeleteSet(dbc dbctx.Context, id uuid.UUID) error {
	return s.sets.Delete(dbc, id)
}

func (s *flashcardService) ListCards(dbc dbctx.Context, setID uuid.UUID) ([]*planner.Flashcard, error) {
	return s.cards.ListBySet(dbc, setID)
}

func (s *flashcardService) CreateCard(dbc dbctx.Context, row *planner.Flashcard, hasOrder bool) (*planner.Flashcard, error) {
	if _, err := s.sets.GetByID(dbc, row.SetID); err != nil {
		return nil, err
	}
	if !hasOrder {
		max, err := s.cards.MaxOrder(dbc, row.SetID)
		if err != nil {
			return nil, err
		}
		row.SortOrder = max + 1
	}
	return s.cards.Create(dbc, row)
}

func (s *flashcardService) UpdateCard(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Flashcard, error) {
	return s.cards.UpdateFields(dbc, id, updates)
}

func (s *flashcardService) DeleteCard(dbc dbctx.Context, id uuid.UUID) error {
	return s.cards.Delete(dbc, id)
}
