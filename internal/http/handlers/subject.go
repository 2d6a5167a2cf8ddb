package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/http/response"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/services"
)

type SubjectHandler struct {
	planner services.PlannerService
}

func NewSubjectHandler(planner services.PlannerService) *SubjectHandler {
	return &SubjectHandler{planner: planner}
}

type createSubjectReq struct {
	Name       string `json:"name" binding:"required"`
	Color      string `json:"color" binding:"required"`
	AICategory string `json:"ai_category" binding:"required,aicategory"`
}

type updateSubjectReq struct {
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	AICategory *string `json:"ai_category" binding:"omitempty,aicategory"`
}

// GET /api/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.planner.ListSubjects(dbc)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"subjects": rows})
}

// POST /api/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req createSubjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.planner.CreateSubject(dbc, &planner.Subject{
		Name:       req.Name,
		Color:      req.Color,
		AICategory: req.AICategory,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"subject": row})
}

// PATCH /api/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_subject_id", err)
		return
	}
	var req updateSubjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.AICategory != nil {
		updates["ai_category"] = *req.AICategory
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.planner.UpdateSubject(dbc, id, updates)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"subject": row})
}

// DELETE /api/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_subject_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	if err := h.planner.DeleteSubject(dbc, id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
