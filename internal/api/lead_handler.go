package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/models"
	"vecino-backend-go/pkg/mailer"
)

// LeadHandler handles inbound contact requests and the notify-admin
// endpoint that relays platform events to the operations inbox.
type LeadHandler struct {
	leadService core.LeadService
	mailer      *mailer.Mailer
	adminEmail  string
	logger      *zap.Logger
}

// NewLeadHandler creates a new LeadHandler. The mailer may be nil; the
// notify-admin endpoint then accepts payloads but only logs them.
func NewLeadHandler(ls core.LeadService, m *mailer.Mailer, adminEmail string, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{leadService: ls, mailer: m, adminEmail: adminEmail, logger: logger}
}

// SubmitLead handles POST /leads.
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	lead, err := h.leadService.SubmitLead(c.Request.Context(), req)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// NotifyAdmin handles POST /notify-admin. The response is always 202 once
// the payload parses; email delivery is best effort and failures are only
// logged so notifying callers never block on SMTP.
func (h *LeadHandler) NotifyAdmin(c *gin.Context) {
	var req models.AdminNotification
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if h.mailer == nil || h.adminEmail == "" {
		h.logger.Info("admin notification received (mail delivery disabled)",
			zap.String("subject", req.Subject))
		c.JSON(http.StatusAccepted, SuccessResponse{Message: "Notification accepted"})
		return
	}

	body := req.Body
	if len(req.Meta) > 0 {
		keys := make([]string, 0, len(req.Meta))
		for k := range req.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var sb strings.Builder
		sb.WriteString(body)
		sb.WriteString("\n\n")
		for _, k := range keys {
			fmt.Fprintf(&sb, "%s: %s\n", k, req.Meta[k])
		}
		body = sb.String()
	}

	go func(subject, body string) {
		if err := h.mailer.Send(h.adminEmail, subject, body); err != nil {
			h.logger.Warn("admin notification email failed",
				zap.String("subject", subject), zap.Error(err))
		}
	}(req.Subject, body)

	c.JSON(http.StatusAccepted, SuccessResponse{Message: "Notification accepted"})
}
