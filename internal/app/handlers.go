package app

import (
	httpH "github.com/yungbote/studyhall-backend/internal/http/handlers"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Subject    *httpH.SubjectHandler
	Calendar   *httpH.CalendarHandler
	Task       *httpH.TaskHandler
	Flashcard  *httpH.FlashcardHandler
	Study      *httpH.StudyHandler
	Preference *httpH.PreferenceHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Subject:    httpH.NewSubjectHandler(svcs.Planner),
		Calendar:   httpH.NewCalendarHandler(svcs.Planner),
		Task:       httpH.NewTaskHandler(svcs.Planner),
		Flashcard:  httpH.NewFlashcardHandler(svcs.Flashcard),
		Study:      httpH.NewStudyHandler(svcs.Study, svcs.Tutor),
		Preference: httpH.NewPreferenceHandler(svcs.Study),
	}
}
