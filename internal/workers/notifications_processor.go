// internal/workers/notifications_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// Message is a notification addressed to a seller
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers seller notifications.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// LogNotifier writes notifications to the log instead of delivering them.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(slog.String("component", "notifier"))}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	n.logger.InfoContext(ctx, "notification",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body))
	return nil
}

// NotificationProcessor tells sellers about new interests and visit requests
type NotificationProcessor struct {
	users    ports.UserRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewNotificationProcessor creates a new notification processor
func NewNotificationProcessor(users ports.UserRepository, notifier Notifier, logger *slog.Logger) *NotificationProcessor {
	return &NotificationProcessor{
		users:    users,
		notifier: notifier,
		logger:   logger.With(slog.String("processor", "notification")),
	}
}

// NotifyInterest handles TypeNotifyInterest
func (p *NotificationProcessor) NotifyInterest(ctx context.Context, t *asynq.Task) error {
	var payload InterestPayload
	if err := decode(t, &payload); err != nil {
		return err
	}
	in := payload.Interest

	var body strings.Builder
	fmt.Fprintf(&body, "%s (%s", in.UserName, in.UserEmail)
	if in.UserPhone != "" {
		fmt.Fprintf(&body, ", %s", in.UserPhone)
	}
	fmt.Fprintf(&body, ") is interested in %q (%s).", in.PropertyTitle, in.Type)
	if in.Message != "" {
		fmt.Fprintf(&body, "\n\n%s", in.Message)
	}

	return p.send(ctx, in.SellerID, Message{
		Subject: "New interest in " + in.PropertyTitle,
		Body:    body.String(),
	})
}

// NotifyVisit handles TypeNotifyVisit
func (p *NotificationProcessor) NotifyVisit(ctx context.Context, t *asynq.Task) error {
	var payload VisitPayload
	if err := decode(t, &payload); err != nil {
		return err
	}
	v := payload.Visit

	body := fmt.Sprintf("%s (%s) asked to visit %q on %s at %s.",
		v.VisitorName, v.VisitorEmail, v.PropertyTitle, v.VisitDate.Format("Mon, 02 Jan 2006"), v.VisitTime)
	if v.Notes != "" {
		body += "\n\n" + v.Notes
	}

	return p.send(ctx, v.SellerID, Message{
		Subject: "Visit request for " + v.PropertyTitle,
		Body:    body,
	})
}

func (p *NotificationProcessor) send(ctx context.Context, sellerID uuid.UUID, msg Message) error {
	seller, err := p.users.FindByID(ctx, sellerID)
	if err != nil {
		return fmt.Errorf("failed to load seller %s: %w", sellerID, skipIfNotFound(err))
	}
	msg.To = seller.Email

	if err := p.notifier.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to notify seller: %w", err)
	}

	p.logger.InfoContext(ctx, "seller notified",
		slog.String("seller_id", sellerID.String()),
		slog.String("subject", msg.Subject))
	return nil
}
