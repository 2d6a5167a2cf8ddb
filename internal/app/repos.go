package app

import (
	"gorm.io/gorm"

	plannerRepos "github.com/yungbote/studyhall-backend/internal/data/repos/planner"
	studyRepos "github.com/yungbote/studyhall-backend/internal/data/repos/study"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type Repos struct {
	Subject      plannerRepos.SubjectRepo
	Event        plannerRepos.EventRepo
	Task         plannerRepos.TaskRepo
	FlashcardSet plannerRepos.FlashcardSetRepo
	Flashcard    plannerRepos.FlashcardRepo
	Conversation studyRepos.ConversationRepo
	Message      studyRepos.MessageRepo
	Preference   studyRepos.PreferenceRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Subject:      plannerRepos.NewSubjectRepo(db, log),
		Event:        plannerRepos.NewEventRepo(db, log),
		Task:         plannerRepos.NewTaskRepo(db, log),
		FlashcardSet: plannerRepos.NewFlashcardSetRepo(db, log),
		Flashcard:    plannerRepos.NewFlashcardRepo(db, log),
		Conversation: studyRepos.NewConversationRepo(db, log),
		Message:      studyRepos.NewMessageRepo(db, log),
		Preference:   studyRepos.NewPreferenceRepo(db, log),
	}
}
