package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrContactFieldMissing    = errors.New("first name, email and message are required")
)

// ContactNotifier forwards a stored message to the institute inbox. Satisfied
// by ResendNotifier; nil disables notification.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, message db.ContactMessage) error
}

// ContactService stores public contact form submissions.
type ContactService struct {
	db       *gorm.DB
	notifier ContactNotifier
	logger   *zap.Logger
}

// ContactInput represents a public contact form submission.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
}

// NewContactService creates a ContactService. notifier may be nil.
func NewContactService(gdb *gorm.DB, notifier ContactNotifier, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{db: gdb, notifier: notifier, logger: logger}
}

// Submit validates and stores a new message, then fires the notification in
// the background. A notification failure never fails the submission.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*db.ContactMessage, error) {
	item := db.ContactMessage{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		Read:      false,
	}
	if item.FirstName == "" || item.Email == "" || item.Message == "" {
		return nil, ErrContactFieldMissing
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go func(stored db.ContactMessage) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.notifier.NotifyContact(ctx, stored); err != nil {
				s.logger.Warn("contact notification failed",
					zap.Uint("message_id", stored.ID), zap.Error(err))
			}
		}(item)
	}

	return &item, nil
}

// List returns messages, newest first. unreadOnly restricts to unread rows.
func (s *ContactService) List(unreadOnly bool) ([]db.ContactMessage, error) {
	query := s.db.Order("created_at desc").Order("id desc")
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var items []db.ContactMessage
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a message by id.
func (s *ContactService) Get(id uint) (*db.ContactMessage, error) {
	var item db.ContactMessage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactMessageNotFound
		}
		return nil, err
	}
	return &item, nil
}

// MarkRead flips the read flag and returns the row.
func (s *ContactService) MarkRead(id uint) (*db.ContactMessage, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if item.Read {
		return item, nil
	}

	item.Read = true
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete hard-deletes a message and returns the removed row.
func (s *ContactService) Delete(id uint) (*db.ContactMessage, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Unscoped().Delete(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// CountUnread reports how many messages are still unread.
func (s *ContactService) CountUnread() (int64, error) {
	var count int64
	err := s.db.Model(&db.ContactMessage{}).Where("read = ?", false).Count(&count).Error
	return count, err
}

// ResendNotifier emails contact submissions to the institute inbox via the
// Resend API.
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendNotifier returns a notifier, or nil when the API key or recipient
// is unset so callers can pass the result straight to NewContactService.
func NewResendNotifier(apiKey, from, to string) *ResendNotifier {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(to) == "" {
		return nil
	}
	return &ResendNotifier{client: resend.NewClient(apiKey), from: from, to: to}
}

// NotifyContact sends the notification email.
func (n *ResendNotifier) NotifyContact(ctx context.Context, message db.ContactMessage) error {
	name := strings.TrimSpace(message.FirstName + " " + message.LastName)
	body := fmt.Sprintf(
		"<p><strong>%s</strong> (%s) wrote:</p><blockquote>%s</blockquote>",
		html.EscapeString(name),
		html.EscapeString(message.Email),
		html.EscapeString(message.Message),
	)

	_, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		ReplyTo: message.Email,
		Subject: fmt.Sprintf("New contact message from %s", name),
		Html:    body,
	})
	return err
}
