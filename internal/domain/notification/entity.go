package notification

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyMessage    = errors.New("notification message is required")
	ErrInvalidAudience = errors.New("invalid notification audience")
)

type Audience string

const (
	AudienceAll       Audience = "all"
	AudienceCheckedIn Audience = "checked_in"
	AudienceCustom    Audience = "custom"
)

func NewAudience(s string) (Audience, error) {
	switch Audience(s) {
	case AudienceAll, AudienceCheckedIn, AudienceCustom:
		return Audience(s), nil
	default:
		return "", ErrInvalidAudience
	}
}

// Notification is a stored in-app message. Delivery is just the inbox query;
// there is no push or email channel.
type Notification struct {
	id         int64
	eventID    *int64
	message    string
	recipients []string
	createdAt  time.Time
}

func New(eventID *int64, message string, recipients []string) (*Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	cleaned := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r = strings.TrimSpace(r); r != "" {
			cleaned = append(cleaned, r)
		}
	}

	return &Notification{
		eventID:    eventID,
		message:    message,
		recipients: cleaned,
	}, nil
}

func (n *Notification) ID() int64            { return n.id }
func (n *Notification) EventID() *int64      { return n.eventID }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Recipients() []string { return n.recipients }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
