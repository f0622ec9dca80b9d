package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

type ColumnHandler struct {
	store *store.Store
}

func NewColumnHandler(s *store.Store) *ColumnHandler {
	return &ColumnHandler{store: s}
}

type CreateColumnRequest struct {
	Title string `json:"title" binding:"required"`
	Color string `json:"color"`
}

type UpdateColumnRequest struct {
	Title *string `json:"title"`
	Color *string `json:"color"`
}

// Create appends a new empty column to the board
func (h *ColumnHandler) Create(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id, err := h.store.CreateColumn(boardID, req.Title, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		case errors.Is(err, model.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create column"})
		}
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// Update replaces the supplied column fields
func (h *ColumnHandler) Update(c *gin.Context) {
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

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err = h.store.UpdateColumn(boardID, columnID, store.ColumnUpdate{
		Title: req.Title,
		Color: req.Color,
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update column"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes a column together with all of its cards
func (h *ColumnHandler) Delete(c *gin.Context) {
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

	if err := h.store.DeleteColumn(boardID, columnID); err != nil {
		switch {
		case errors.Is(err, store.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		case errors.Is(err, store.ErrColumnNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete column"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
