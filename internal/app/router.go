package app

import (
	httpServer "github.com/yungbote/studyhall-backend/internal/http"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers) *httpServer.Server {
	return httpServer.NewServer(httpServer.RouterConfig{
		Log:               log,
		HealthHandler:     handlers.Health,
		SubjectHandler:    handlers.Subject,
		CalendarHandler:   handlers.Calendar,
		TaskHandler:       handlers.Task,
		FlashcardHandler:  handlers.Flashcard,
		StudyHandler:      handlers.Study,
		PreferenceHandler: handlers.Preference,
	})
}
