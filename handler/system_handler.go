package handler

import (
	"main/repository"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	store     *repository.EntryStore
	startedAt time.Time
}

func NewSystemHandler(store *repository.EntryStore) *SystemHandler {
	return &SystemHandler{store: store, startedAt: time.Now()}
}

// GetHealth reports service liveness plus basic host diagnostics and the
// current log sizes.
func (h *SystemHandler) GetHealth(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":         "ok",
		"uptime":         time.Since(h.startedAt).Round(time.Second).String(),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
		"entry_counts":   h.store.Counts(),
	})
}
