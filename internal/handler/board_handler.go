package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

type BoardHandler struct {
	store *store.Store
}

func NewBoardHandler(s *store.Store) *BoardHandler {
	return &BoardHandler{store: s}
}

type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateBoardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type SetActiveBoardRequest struct {
	BoardID string `json:"board_id" binding:"required"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type BoardListResponse struct {
	Boards      []model.Board `json:"boards"`
	ActiveBoard *uuid.UUID    `json:"active_board"`
}

// Create creates a new board and makes it active
func (h *BoardHandler) Create(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id, err := h.store.CreateBoard(req.Title, req.Description)
	if err != nil {
		if errors.Is(err, model.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		}
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// GetAll returns every board plus the active board pointer
func (h *BoardHandler) GetAll(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, BoardListResponse{
		Boards:      snap.Boards,
		ActiveBoard: snap.ActiveBoard,
	})
}

// GetByID returns a single board
func (h *BoardHandler) GetByID(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	board, err := h.store.Board(boardID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.JSON(http.StatusOK, board)
}

// Update replaces the supplied board fields
func (h *BoardHandler) Update(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err = h.store.UpdateBoard(boardID, store.BoardUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		case errors.Is(err, model.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes a board; the active pointer moves to the first remaining
// board when the active one is deleted
func (h *BoardHandler) Delete(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	if err := h.store.DeleteBoard(boardID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetActive returns the currently active board
func (h *BoardHandler) GetActive(c *gin.Context) {
	board := h.store.CurrentBoard()
	if board == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active board"})
		return
	}

	c.JSON(http.StatusOK, board)
}

// SetActive points the active-board reference at an existing board
func (h *BoardHandler) SetActive(c *gin.Context) {
	var req SetActiveBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	if err := h.store.SetActiveBoard(boardID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
