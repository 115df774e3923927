package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/config"
)

// ConfigHandler exposes the shared default password so the test harness can
// log in without out-of-band coordination. Demo behavior, kept on purpose.
type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

func (h *ConfigHandler) Config(ctx *gin.Context) {
	RespondData(ctx, gin.H{
		"defaultPassword": h.cfg.DefaultUserPassword,
	})
}
