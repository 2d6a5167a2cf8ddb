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

type FlashcardHandler struct {
	flashcards services.FlashcardService
}

func NewFlashcardHandler(flashcards services.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{flashcards: flashcards}
}

type createSetReq struct {
	SubjectID uuid.UUID `json:"subject_id" binding:"required"`
	Title     string    `json:"title" binding:"required"`
}

type updateSetReq struct {
	Title *string `json:"title"`
}

type createCardReq struct {
	SetID     uuid.UUID `json:"set_id" binding:"required"`
	Front     string    `json:"front" binding:"required"`
	Back      string    `json:"back" binding:"required"`
	SortOrder *int      `json:"sort_order"`
}

type updateCardReq struct {
	Front     *string `json:"front"`
	Back      *string `json:"back"`
	SortOrder *int    `json:"sort_order"`
}

// GET /api/flashcards/sets
func (h *FlashcardHandler) ListSets(c *gin.Context) {
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.flashcards.ListSets(dbc, nil)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sets": rows})
}

// GET /api/flashcards/sets/subject/:subjectId
func (h *FlashcardHandler) ListSetsBySubject(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_subject_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.flashcards.ListSets(dbc, &subjectID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sets": rows})
}

// POST /api/flashcards/sets
func (h *FlashcardHandler) CreateSet(c *gin.Context) {
	var req createSetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.flashcards.CreateSet(dbc, &planner.FlashcardSet{
		SubjectID: req.SubjectID,
		Title:     req.Title,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"set": row})
}

// PATCH /api/flashcards/sets/:id
func (h *FlashcardHandler) UpdateSet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_set_id", err)
		return
	}
	var req updateSetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.flashcards.UpdateSet(dbc, id, updates)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"set": row})
}

// DELETE /api/flashcards/sets/:id
func (h *FlashcardHandler) DeleteSet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_set_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	if err := h.flashcards.DeleteSet(dbc, id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /api/flashcards/:setId
func (h *FlashcardHandler) ListCards(c *gin.Context) {
	setID, err := uuid.Parse(c.Param("setId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_set_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	rows, err := h.flashcards.ListCards(dbc, setID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"cards": rows})
}

// POST /api/flashcards
func (h *FlashcardHandler) CreateCard(c *gin.Context) {
	var req createCardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	row := &planner.Flashcard{
		SetID: req.SetID,
		Front: req.Front,
		Back:  req.Back,
	}
	if req.SortOrder != nil {
		row.SortOrder = *req.SortOrder
	}
	dbc := dbctx.From(c.Request.Context())
	created, err := h.flashcards.CreateCard(dbc, row, req.SortOrder != nil)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"card": created})
}

// PATCH /api/flashcards/:id
func (h *FlashcardHandler) UpdateCard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_card_id", err)
		return
	}
	var req updateCardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	updates := map[string]interface{}{}
	if req.Front != nil {
		updates["front"] = *req.Front
	}
	if req.Back != nil {
		updates["back"] = *req.Back
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	dbc := dbctx.From(c.Request.Context())
	row, err := h.flashcards.UpdateCard(dbc, id, updates)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"card": row})
}

// DELETE /api/flashcards/:id
func (h *FlashcardHandler) DeleteCard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_card_id", err)
		return
	}
	dbc := dbctx.From(c.Request.Context())
	if err := h.flashcards.DeleteCard(dbc, id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
