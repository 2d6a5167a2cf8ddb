package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/http/response"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/services"
)

type CalendarHandler struct {
	planner services.PlannerService
}

func NewCalendarHandler(planner services.PlannerService) *CalendarHandler {
	return &CalendarHandler{planner: planner}
}

type createEventReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Date        string     `json:"date" binding:"required,plannerdate"`
	EventType   string     `json:"event_type" binding:"required,eventtype"`
	SubjectID   *uuid.UUID `json:"subject_id"`
}

type updateEventReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *string    `json:"date" binding:"omitempty,plannerdate"`
	EventType   *string    `json:"event_type" binding:"omitempty,eventtype"`
	SubjectID   *uuid.UUID `json:"subject_id"`
}

// GET /api/calendar/upcoming?limit=10
func (h *CalendarHandler) Upcoming(c *gin.Context) {
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.planner.ListUpcomingEvents(dbc, limit)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"events": rows})
}

// GET /api/calendar/:year/:month
func (h *CalendarHandler) ByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_year", err)
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		response.RespondError(c, http.StatusBadRequest, "invalid_month", fmt.Errorf("month %q out of range", c.Param("month")))
		return
	}
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.planner.ListEventsByMonth(dbc, year, month)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"events": rows})
}

// POST /api/calendar
func (h *CalendarHandler) Create(c *gin.Context) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.planner.CreateEvent(dbc, &planner.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		EventType:   req.EventType,
		SubjectID:   req.SubjectID,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"event": row})
}

// PATCH /api/calendar/:id
func (h *CalendarHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_event_id", err)
		return
	}
	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.SubjectID != nil {
		updates["subject_id"] = *req.SubjectID
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.planner.UpdateEvent(dbc, id, updates)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"event": row})
}

// DELETE /api/calendar/:id
func (h *CalendarHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_event_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	if err := h.planner.DeleteEvent(dbc, id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
