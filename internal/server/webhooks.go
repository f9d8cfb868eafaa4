package server

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

const (
	WebhookSecretHeader = "X-Webhook-Secret"
	ContentfulTopic     = "X-Contentful-Topic"
)

var (
	ErrWebhookDisabled  = errors.New("webhook secret not configured")
	ErrWebhookForbidden = errors.New("invalid webhook secret")
)

// handleContentfulWebhook drops cached content and stored factsheets after
// content was published in the CMS
func (s *Server) handleContentfulWebhook(c *gin.Context) {
	secret := s.config.WebhookSecret
	if secret == "" {
		errorJSON(c, http.StatusForbidden, ErrWebhookDisabled)
		return
	}
	given := c.GetHeader(WebhookSecretHeader)
	if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
		slog.Warn("Rejected content webhook",
			slog.String("remote", c.ClientIP()))
		errorJSON(c, http.StatusForbidden, ErrWebhookForbidden)
		return
	}

	topic := c.GetHeader(ContentfulTopic)
	s.content.Invalidate()
	if err := s.archive.PurgeFactsheets(c.Request.Context()); err != nil {
		slog.Error("Failed to purge factsheets",
			slog.String("topic", topic),
			log.Error(err))
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}

	slog.Info("Content invalidated",
		slog.String("topic", topic))
	c.JSON(http.StatusOK, api.MessageResponse{
		Message: "content invalidated",
	})
}
