package attendee

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

var (
	ErrCodeAlreadyRedeemed = errors.New("code already redeemed")
	ErrEmptyCode           = errors.New("code string is empty")
)

const codePrefix = "QR-"

// Code is the single-use entry token bound to one registration. It is rendered
// as a QR image by the handler layer; here it is only an opaque string with a
// one-way Issued -> Redeemed transition.
type Code struct {
	id         int64
	value      string
	attendeeID int64
	createdAt  time.Time
	redeemedAt *time.Time
}

// NewCode issues a fresh code for a registration. The 16 random bytes match
// what the registration endpoint has always handed to attendees.
func NewCode(attendeeID int64) (*Code, error) {
	if attendeeID <= 0 {
		return nil, ErrMissingUser
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	return &Code{
		value:      codePrefix + hex.EncodeToString(buf),
		attendeeID: attendeeID,
	}, nil
}

// Rehydrate rebuilds a Code from stored columns.
func Rehydrate(id int64, value string, attendeeID int64, createdAt time.Time, redeemedAt *time.Time) (*Code, error) {
	if value == "" {
		return nil, ErrEmptyCode
	}
	return &Code{
		id:         id,
		value:      value,
		attendeeID: attendeeID,
		createdAt:  createdAt,
		redeemedAt: redeemedAt,
	}, nil
}

func (c *Code) ID() int64              { return c.id }
func (c *Code) Value() string          { return c.value }
func (c *Code) AttendeeID() int64      { return c.attendeeID }
func (c *Code) CreatedAt() time.Time   { return c.createdAt }
func (c *Code) RedeemedAt() *time.Time { return c.redeemedAt }

func (c *Code) IsRedeemed() bool {
	return c.redeemedAt != nil
}

// Redeem performs the only transition in the model. Redeemed is terminal:
// once the timestamp is set it is never cleared or moved.
func (c *Code) Redeem(at time.Time) error {
	if c.redeemedAt != nil {
		return ErrCodeAlreadyRedeemed
	}
	c.redeemedAt = &at
	return nil
}
