package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/http/response"
	"github.com/yungbote/studyhall-backend/internal/modules/tutor"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/services"
)

type StudyHandler struct {
	study services.StudyService
	tutor services.TutorService
}

func NewStudyHandler(studySvc services.StudyService, tutorSvc services.TutorService) *StudyHandler {
	return &StudyHandler{study: studySvc, tutor: tutorSvc}
}

type createConversationReq struct {
	SubjectID uuid.UUID `json:"subject_id" binding:"required"`
	Title     string    `json:"title"`
}

type chatReq struct {
	ConversationID uuid.UUID    `json:"conversation_id" binding:"required"`
	Category       string       `json:"category" binding:"omitempty,aicategory"`
	Message        string       `json:"message" binding:"required"`
	History        []tutor.Turn `json:"history"`
}

// GET /api/study/conversations/:subjectId
func (h *StudyHandler) ListConversations(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_subject_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.study.ListConversations(dbc, subjectID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"conversations": rows})
}

// POST /api/study/conversations
func (h *StudyHandler) CreateConversation(c *gin.Context) {
	var req createConversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.study.CreateConversation(dbc, &study.Conversation{
		SubjectID: req.SubjectID,
		Title:     req.Title,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"conversation": row})
}

// DELETE /api/study/conversations/:id
func (h *StudyHandler) DeleteConversation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_conversation_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	if err := h.study.DeleteConversation(dbc, id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /api/study/messages/:conversationId?limit=200
func (h *StudyHandler) ListMessages(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("conversationId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_conversation_id", err)
		return
	}
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.study.ListMessages(dbc, conversationID, limit)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"messages": rows})
}

// POST /api/study/chat
func (h *StudyHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	reply, err := h.tutor.Respond(dbc, req.ConversationID, req.Category, req.Message, req.History)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"reply": reply})
}
