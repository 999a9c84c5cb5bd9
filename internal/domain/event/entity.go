package event

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingName = errors.New("event name is required")
	ErrMissingDate = errors.New("event date is required")
)

// Event is the grouping attendees register under. Immutable once check-in
// starts; the redemption transaction only ever reads it through the attendee.
type Event struct {
	id        int64
	name      string
	date      time.Time
	location  *string
	createdAt time.Time
	updatedAt time.Time
}

func NewEvent(name string, date time.Time, location *string) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	return &Event{
		name:     name,
		date:     date,
		location: location,
	}, nil
}

func (e *Event) ID() int64            { return e.id }
func (e *Event) Name() string         { return e.name }
func (e *Event) Date() time.Time      { return e.date }
func (e *Event) Location() *string    { return e.location }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }
