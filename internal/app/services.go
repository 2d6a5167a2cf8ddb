package app

import (
	"github.com/yungbote/studyhall-backend/internal/platform/gemini"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
	"github.com/yungbote/studyhall-backend/internal/services"
)

type Services struct {
	Planner   services.PlannerService
	Flashcard services.FlashcardService
	Study     services.StudyService
	Tutor     services.TutorService
	Gemini    gemini.Client
}

func wireServices(log *logger.Logger, repos Repos) Services {
	log.Info("Wiring services...")
	geminiClient := gemini.NewClient(log)
	return Services{
		Planner:   services.NewPlannerService(log, repos.Subject, repos.Event, repos.Task),
		Flashcard: services.NewFlashcardService(log, repos.FlashcardSet, repos.Flashcard),
		Study:     services.NewStudyService(log, repos.Conversation, repos.Message, repos.Preference),
		Tutor:     services.NewTutorService(log, repos.Subject, repos.Conversation, repos.Message, repos.Preference, geminiClient),
		Gemini:    geminiClient,
	}
}
