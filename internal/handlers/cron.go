package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openquorum/ballot-service/internal/config"
	"github.com/openquorum/ballot-service/internal/services"
)

// CronHandler exposes the scheduler tick to an external trigger (a cron
// job, an orchestrator). Guarded by a shared secret header instead of user
// auth.
type CronHandler struct {
	cron   *services.BallotCron
	config config.CronConfig
}

func NewCronHandler(cron *services.BallotCron, config config.CronConfig) *CronHandler {
	return &CronHandler{cron: cron, config: config}
}

func (h *CronHandler) Tick(c *gin.Context) {
	secret := c.GetHeader("X-Cron-Secret")
	if h.config.Secret == "" || secret == "" || secret != h.config.Secret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result := h.cron.Tick(c.Request.Context(), services.CronConfig{
		OpenReminderMinutes:  h.config.OpenReminderMinutes,
		CloseReminderMinutes: h.config.CloseReminderMinutes,
		BatchSize:            h.config.BatchSize,
		MaxIterations:        h.config.MaxIterations,
		DryRun:               h.config.DryRun,
	})

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}
