// Package mailer renders and dispatches the two transactional emails for
// an accepted submission.
package mailer

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/Azz3m90/LandPage/internal/contact"
	"github.com/Azz3m90/LandPage/internal/logging"
)

// Dispatcher sends the operator notification and the sender confirmation
// for one validated submission. The operator send is the load-bearing one:
// its failure fails the request, while a confirmation failure is only
// logged.
type Dispatcher struct {
	sender   Sender
	identity Identity
}

// NewDispatcher creates a dispatcher over the given transport.
func NewDispatcher(sender Sender, identity Identity) *Dispatcher {
	return &Dispatcher{sender: sender, identity: identity}
}

// Dispatch renders and sends both emails and reports which succeeded.
// The returned reference identifies the submission in the operator email
// and the audit log.
func (d *Dispatcher) Dispatch(ctx context.Context, sub *contact.Submission) (contact.NotificationOutcome, string) {
	logger := logging.GetGlobalLogger()
	outcome := contact.NotificationOutcome{}
	reference := uuid.NewString()
	now := time.Now()

	admin, err := RenderAdminNotification(sub, d.identity, reference, now)
	if err != nil {
		logger.Error("failed to render admin notification: %v", err)
		return outcome, reference
	}
	// Replies should go straight to the person asking.
	if _, err := mail.ParseAddress(sub.Email); err == nil {
		admin.ReplyTo = sub.Email
	}

	if err := d.sender.Send(ctx, admin); err != nil {
		logger.Error("failed to send admin notification for %s: %v", reference, err)
	} else {
		outcome.AdminSent = true
	}

	confirmation, err := RenderClientConfirmation(sub, d.identity, now)
	if err != nil {
		logger.Error("failed to render client confirmation: %v", err)
		return outcome, reference
	}

	if err := d.sender.Send(ctx, confirmation); err != nil {
		// Not fatal: the inquiry reached the operator.
		logger.Warn("failed to send client confirmation for %s: %v", reference, err)
	} else {
		outcome.ClientSent = true
	}

	return outcome, reference
}
