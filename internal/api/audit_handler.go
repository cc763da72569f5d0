package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
)

// AuditHandler streams the append-only audit trail to admin clients.
type AuditHandler struct {
	auditService core.AuditService
	logger       *zap.Logger
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(as core.AuditService, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{auditService: as, logger: logger}
}

// StreamAuditLog handles GET /admin/audit/stream as Server-Sent Events.
// The underlying Firestore snapshot listener is cancelled when the client
// disconnects.
func (h *AuditHandler) StreamAuditLog(c *gin.Context) {
	events, err := h.auditService.WatchAuditLog(c.Request.Context())
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		entry, open := <-events
		if !open {
			return false
		}
		payload, err := json.Marshal(entry)
		if err != nil {
			h.logger.Warn("failed to encode audit event", zap.Error(err))
			return true
		}
		c.SSEvent("audit", string(payload))
		return true
	})
}
