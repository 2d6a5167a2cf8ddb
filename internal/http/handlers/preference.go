package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/http/response"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/services"
)

type PreferenceHandler struct {
	study services.StudyService
}

func NewPreferenceHandler(studySvc services.StudyService) *PreferenceHandler {
	return &PreferenceHandler{study: studySvc}
}

type savePreferenceReq struct {
	SubjectID          uuid.UUID `json:"subject_id" binding:"required"`
	ExplanationStyle   string    `json:"explanation_style" binding:"omitempty,oneof=step_by_step analogies visual_examples concise socratic"`
	ComplexityLevel    string    `json:"complexity_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	CustomInstructions string    `json:"custom_instructions"`
}

// GET /api/preferences/:subjectId
//
// A subject with no stored preference is a normal state, so the response is
// 200 with a null preference rather than a 404.
func (h *PreferenceHandler) Get(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_subject_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.study.GetPreference(dbc, subjectID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"preference": row})
}

// PUT /api/preferences
func (h *PreferenceHandler) Save(c *gin.Context) {
	var req savePreferenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.study.SavePreference(dbc, &study.LearningPreference{
		SubjectID:          req.SubjectID,
		ExplanationStyle:   req.ExplanationStyle,
		ComplexityLevel:    req.ComplexityLevel,
		CustomInstructions: req.CustomInstructions,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"preference": row})
}
