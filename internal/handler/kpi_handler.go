package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/kpi"
	"taskboard/internal/store"
)

type KPIHandler struct {
	store  *store.Store
	engine *kpi.Engine
}

func NewKPIHandler(s *store.Store, engine *kpi.Engine) *KPIHandler {
	return &KPIHandler{store: s, engine: engine}
}

// Get recomputes the full KPI payload from the current snapshot. The
// optional sort query parameter orders the per-board entries.
func (h *KPIHandler) Get(c *gin.Context) {
	data := h.engine.Compute(h.store.Snapshot())

	if sortKey := c.Query("sort"); sortKey != "" {
		by := kpi.SortBy(sortKey)
		if !by.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort key"})
			return
		}
		kpi.SortBoards(data.BoardKPIs, by)
	}

	c.JSON(http.StatusOK, data)
}
