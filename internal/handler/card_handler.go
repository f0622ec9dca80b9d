package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

type CardHandler struct {
	store *store.Store
}

func NewCardHandler(s *store.Store) *CardHandler {
	return &CardHandler{store: s}
}

type CreateCardRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags        []string `json:"tags"`
}

type UpdateCardRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Priority    *string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags        *[]string `json:"tags"`
}

type MoveCardRequest struct {
	SourceColumnID string `json:"source_column_id" binding:"required"`
	DestColumnID   string `json:"dest_column_id" binding:"required"`
	SourceIndex    *int   `json:"source_index" binding:"required"`
	DestIndex      *int   `json:"dest_index" binding:"required"`
}

// Create appends a card to the end of a column
func (h *CardHandler) Create(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}
	columnID, err := uuid.Parse(c.Param("column_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id, err := h.store.CreateCard(boardID, columnID, store.CardData{
		Title:       req.Title,
		Description: req.Description,
		Priority:    model.Priority(req.Priority),
		Tags:        req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		case errors.Is(err, store.ErrColumnNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		case errors.Is(err, model.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		}
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// Update replaces the supplied card fields and refreshes its updatedAt
func (h *CardHandler) Update(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}
	columnID, err := uuid.Parse(c.Param("column_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}
	cardID, err := uuid.Parse(c.Param("card_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	upd := store.CardUpdate{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if req.Priority != nil {
		p := model.Priority(*req.Priority)
		upd.Priority = &p
	}

	if err := h.store.UpdateCard(boardID, columnID, cardID, upd); err != nil {
		switch {
		case errors.Is(err, store.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		case errors.Is(err, store.ErrColumnNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		case errors.Is(err, store.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		case errors.Is(err, model.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes a card from its column
func (h *CardHandler) Delete(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}
	columnID, err := uuid.Parse(c.Param("column_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}
	cardID, err := uuid.Parse(c.Param("card_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	if err := h.store.DeleteCard(boardID, columnID, cardID); err != nil {
		switch {
		case errors.Is(err, store.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		case errors.Is(err, store.ErrColumnNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		case errors.Is(err, store.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Move relocates the card at source_index to dest_index, between columns or
// within one. The drag-and-drop front end translates pointer gestures into
// this index-based instruction.
func (h *CardHandler) Move(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sourceColumnID, err := uuid.Parse(req.SourceColumnID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source column ID format"})
		return
	}
	destColumnID, err := uuid.Parse(req.DestColumnID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid destination column ID format"})
		return
	}

	err = h.store.MoveCard(boardID, sourceColumnID, destColumnID, *req.SourceIndex, *req.DestIndex)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		case errors.Is(err, store.ErrColumnNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		case errors.Is(err, store.ErrIndexOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Source index out of range"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move card"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
