package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/Azz3m90/LandPage/internal/i18n"
)

// Mock Sender
type mockSender struct {
	sendFunc func(ctx context.Context, email *Email) error
	sent     []*Email
}

func (m *mockSender) Send(ctx context.Context, email *Email) error {
	if m.sendFunc != nil {
		if err := m.sendFunc(ctx, email); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, email)
	return nil
}

func TestDispatchBothSucceed(t *testing.T) {
	sender := &mockSender{}
	d := NewDispatcher(sender, testIdentity())

	outcome, reference := d.Dispatch(context.Background(), testSubmission(i18n.LangFR))

	if !outcome.AdminSent || !outcome.ClientSent {
		t.Fatalf("outcome = %+v, want both sent", outcome)
	}
	if reference == "" {
		t.Error("empty submission reference")
	}
	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
	if sender.sent[0].To != "contact@fastcaisse.be" {
		t.Errorf("first email to %q, want the operator", sender.sent[0].To)
	}
	if sender.sent[0].ReplyTo != "john@example.com" {
		t.Errorf("operator email Reply-To = %q, want the sender address", sender.sent[0].ReplyTo)
	}
	if sender.sent[1].To != "john@example.com" {
		t.Errorf("second email to %q, want the sender", sender.sent[1].To)
	}
}

func TestDispatchAdminFailure(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(ctx context.Context, email *Email) error {
			if email.To == "contact@fastcaisse.be" {
				return errors.New("relay rejected")
			}
			return nil
		},
	}
	d := NewDispatcher(sender, testIdentity())

	outcome, _ := d.Dispatch(context.Background(), testSubmission(i18n.LangEN))

	if outcome.AdminSent {
		t.Error("AdminSent = true after relay rejection")
	}
	// The confirmation is still attempted.
	if !outcome.ClientSent {
		t.Error("ClientSent = false though the confirmation send succeeded")
	}
}

func TestDispatchClientFailureIsNotFatal(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(ctx context.Context, email *Email) error {
			if email.To == "john@example.com" {
				return errors.New("mailbox full")
			}
			return nil
		},
	}
	d := NewDispatcher(sender, testIdentity())

	outcome, _ := d.Dispatch(context.Background(), testSubmission(i18n.LangEN))

	if !outcome.AdminSent {
		t.Error("AdminSent = false though the operator send succeeded")
	}
	if outcome.ClientSent {
		t.Error("ClientSent = true after confirmation failure")
	}
}
