package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/export"
	"taskboard/internal/kpi"
	"taskboard/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	store  *store.Store
	engine *kpi.Engine
}

func NewExportHandler(s *store.Store, engine *kpi.Engine) *ExportHandler {
	return &ExportHandler{store: s, engine: engine}
}

// Export streams an xlsx workbook of the board and its KPIs.
func (h *ExportHandler) Export(c *gin.Context) {
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

	data := h.engine.Compute(h.store.Snapshot())
	var boardKPIs kpi.BoardKPIs
	for _, b := range data.BoardKPIs {
		if b.BoardID == boardID {
			boardKPIs = b
			break
		}
	}

	workbook, err := export.Workbook(*board, boardKPIs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export"})
		return
	}

	filename := fmt.Sprintf("%s.xlsx", board.Title)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
