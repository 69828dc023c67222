// Package handlers contains the HTTP handlers of the public API.
package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Azz3m90/LandPage/internal/abuse"
	contactdto "github.com/Azz3m90/LandPage/internal/api/dto/v1/contact"
	"github.com/Azz3m90/LandPage/internal/audit"
	"github.com/Azz3m90/LandPage/internal/contact"
	"github.com/Azz3m90/LandPage/internal/i18n"
	"github.com/Azz3m90/LandPage/internal/logging"
	"github.com/Azz3m90/LandPage/internal/mailer"
	"github.com/Azz3m90/LandPage/internal/ratelimit"
	"github.com/Azz3m90/LandPage/internal/utils"
)

// ContactHandler runs the submission pipeline: language detection,
// validation, anti-abuse gate, email dispatch, response translation.
type ContactHandler struct {
	gate       *abuse.Gate
	dispatcher *mailer.Dispatcher
	limiter    *ratelimit.Store
	auditLog   *audit.Log
	adminEmail string
	resetToken string
}

// NewContactHandler creates the handler for the contact routes.
func NewContactHandler(gate *abuse.Gate, dispatcher *mailer.Dispatcher, limiter *ratelimit.Store, auditLog *audit.Log, adminEmail, resetToken string) *ContactHandler {
	return &ContactHandler{
		gate:       gate,
		dispatcher: dispatcher,
		limiter:    limiter,
		auditLog:   auditLog,
		adminEmail: adminEmail,
		resetToken: resetToken,
	}
}

// Submit handles POST /api/v1/contact/submit. The body may be JSON or
// form-encoded; the response is always a well-formed JSON envelope.
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetGlobalLogger()

	var req contact.SubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		lang := i18n.Detect("", c.Request.Referer())
		c.JSON(http.StatusBadRequest, contactdto.NewErrorResponse(i18n.Catalog(lang).ValidationFailed))
		return
	}

	lang := i18n.Detect(req.Language, c.Request.Referer())
	t := i18n.Catalog(lang)

	sub, fieldErrs := contact.Validate(&req, lang)
	if len(fieldErrs) > 0 {
		message := t.ValidationFailed + ": " + joinFieldErrors(fieldErrs)
		c.JSON(http.StatusBadRequest, contactdto.NewFieldErrorResponse(message, fieldErrs))
		return
	}

	decision := h.gate.Check(c.Request.Context(), &req, utils.GetRealIP(c))
	if !decision.Accepted {
		h.rejectAbuse(c, t, decision)
		return
	}

	outcome, reference := h.dispatcher.Dispatch(c.Request.Context(), sub)

	if err := h.auditLog.Record(sub.Email, sub.Subject); err != nil {
		logger.Error("audit log write failed for %s: %v", reference, err)
	}

	if !outcome.AdminSent {
		c.JSON(http.StatusInternalServerError,
			contactdto.NewDeliveryFailureResponse(fmt.Sprintf(t.DeliveryFailed, h.adminEmail)))
		return
	}

	c.JSON(http.StatusOK, contactdto.NewSuccessResponse(t.SuccessMessage, outcome.AdminSent, outcome.ClientSent))
}

// rejectAbuse translates an abuse rejection into its localized envelope.
func (h *ContactHandler) rejectAbuse(c *gin.Context, t *i18n.Messages, decision contact.AbuseDecision) {
	switch decision.Reason {
	case contact.ReasonCaptchaRequired:
		c.JSON(http.StatusForbidden,
			contactdto.NewSecurityErrorResponse(t.CaptchaRequired, string(contact.ReasonCaptchaRequired)))
	case contact.ReasonCaptchaInvalid:
		c.JSON(http.StatusForbidden,
			contactdto.NewSecurityErrorResponse(t.CaptchaInvalid, string(contact.ReasonCaptchaInvalid)))
	case contact.ReasonRateLimited:
		c.JSON(http.StatusTooManyRequests,
			contactdto.NewErrorResponse(fmt.Sprintf(t.RateLimited, decision.RetryAfterSeconds)))
	default:
		// Deliberately generic: no coaching for whoever tripped the
		// spam heuristics.
		c.JSON(http.StatusBadRequest, contactdto.NewErrorResponse(t.SpamDetected))
	}
}

// ResetRateLimit handles the operator reset. It clears every record
// unconditionally and reports the count.
func (h *ContactHandler) ResetRateLimit(c *gin.Context) {
	if h.resetToken == "" || c.GetHeader("X-Admin-Token") != h.resetToken {
		c.JSON(http.StatusUnauthorized, contactdto.ResetResponse{
			Success: false,
			Message: "Invalid or missing admin token",
		})
		return
	}

	cleared := h.limiter.Reset()
	logging.GetGlobalLogger().Info("rate limit store reset by operator, %d records cleared", cleared)

	c.JSON(http.StatusOK, contactdto.ResetResponse{
		Success:      true,
		Message:      fmt.Sprintf("Rate limiting cleared. Removed %d rate limit records.", cleared),
		FilesCleared: cleared,
	})
}

// joinFieldErrors flattens the error set into one message, in stable field
// order.
func joinFieldErrors(errs contact.FieldErrors) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(errs))
	for _, k := range keys {
		parts = append(parts, errs[k])
	}
	return strings.Join(parts, ", ")
}
