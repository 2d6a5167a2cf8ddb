package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/http/response"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/services"
)

type TaskHandler struct {
	planner services.PlannerService
}

func NewTaskHandler(planner services.PlannerService) *TaskHandler {
	return &TaskHandler{planner: planner}
}

type createTaskReq struct {
	Title     string     `json:"title" binding:"required"`
	Date      string     `json:"date" binding:"required,plannerdate"`
	SubjectID *uuid.UUID `json:"subject_id"`
	SortOrder *int       `json:"sort_order"`
}

type updateTaskReq struct {
	Title     *string    `json:"title"`
	Date      *string    `json:"date" binding:"omitempty,plannerdate"`
	Completed *bool      `json:"completed"`
	SortOrder *int       `json:"sort_order"`
	SubjectID *uuid.UUID `json:"subject_id"`
}

// GET /api/tasks/:date
func (h *TaskHandler) ListByDate(c *gin.Context) {
	date := c.Param("date")
	if !dateRe.MatchString(date) {
		response.RespondError(c, http.StatusBadRequest, "invalid_date", fmt.Errorf("date must be YYYY-MM-DD, got %q", date))
		return
	}
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.planner.ListTasksByDate(dbc, date)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tasks": rows})
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	row := &planner.Task{
		Title:     req.Title,
		Date:      req.Date,
		SubjectID: req.SubjectID,
	}
	if req.SortOrder != nil {
		row.SortOrder = *req.SortOrder
	}
	dbc := dbctx.From(c.Request.Context())
	created, err := h.planner.CreateTask(dbc, row, req.SortOrder != nil)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"task": created})
}

// PATCH /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_task_id", err)
		return
	}
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.SubjectID != nil {
		updates["subject_id"] = *req.SubjectID
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.planner.UpdateTask(dbc, id, updates)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"task": row})
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_task_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	if err := h.planner.DeleteTask(dbc, id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
