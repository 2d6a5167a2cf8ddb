package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/studyhall-backend/internal/http/handlers"
	httpMW "github.com/yungbote/studyhall-backend/internal/http/middleware"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler     *httpH.HealthHandler
	SubjectHandler    *httpH.SubjectHandler
	CalendarHandler   *httpH.CalendarHandler
	TaskHandler       *httpH.TaskHandler
	FlashcardHandler  *httpH.FlashcardHandler
	StudyHandler      *httpH.StudyHandler
	PreferenceHandler *httpH.PreferenceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("studyhall-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")

	if cfg.SubjectHandler != nil {
		api.GET("/subjects", cfg.SubjectHandler.List)
		api.POST("/subjects", cfg.SubjectHandler.Create)
		api.PATCH("/subjects/:id", cfg.SubjectHandler.Update)
		api.DELETE("/subjects/:id", cfg.SubjectHandler.Delete)
	}

	if cfg.CalendarHandler != nil {
		// The static route must come first so "upcoming" never parses as a year.
		api.GET("/calendar/upcoming", cfg.CalendarHandler.Upcoming)
		api.GET("/calendar/:year/:month", cfg.CalendarHandler.ByMonth)
		api.POST("/calendar", cfg.CalendarHandler.Create)
		api.PATCH("/calendar/:id", cfg.CalendarHandler.Update)
		api.DELETE("/calendar/:id", cfg.CalendarHandler.Delete)
	}

	if cfg.TaskHandler != nil {
		api.GET("/tasks/:date", cfg.TaskHandler.ListByDate)
		api.POST("/tasks", cfg.TaskHandler.Create)
		api.PATCH("/tasks/:id", cfg.TaskHandler.Update)
		api.DELETE("/tasks/:id", cfg.TaskHandler.Delete)
	}

	if cfg.StudyHandler != nil {
		api.GET("/study/conversations/:subjectId", cfg.StudyHandler.ListConversations)
		api.POST("/study/conversations", cfg.StudyHandler.CreateConversation)
		api.DELETE("/study/conversations/:id", cfg.StudyHandler.DeleteConversation)
		api.GET("/study/messages/:conversationId", cfg.StudyHandler.ListMessages)
		api.POST("/study/chat", cfg.StudyHandler.Chat)
	}

	if cfg.PreferenceHandler != nil {
		api.GET("/preferences/:subjectId", cfg.PreferenceHandler.Get)
		api.PUT("/preferences", cfg.PreferenceHandler.Save)
	}

	if cfg.FlashcardHandler != nil {
		api.GET("/flashcards/sets", cfg.FlashcardHandler.ListSets)
		api.GET("/flashcards/sets/subject/:subjectId", cfg.FlashcardHandler.ListSetsBySubject)
		api.POST("/flashcards/sets", cfg.FlashcardHandler.CreateSet)
		api.PATCH("/flashcards/sets/:id", cfg.FlashcardHandler.UpdateSet)
		api.DELETE("/flashcards/sets/:id", cfg.FlashcardHandler.DeleteSet)
		api.GET("/flashcards/:setId", cfg.FlashcardHandler.ListCards)
		api.POST("/flashcards", cfg.FlashcardHandler.CreateCard)
		api.PATCH("/flashcards/:id", cfg.FlashcardHandler.UpdateCard)
		api.DELETE("/flashcards/:id", cfg.FlashcardHandler.DeleteCard)
	}

	return r
}
