package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultPageLimit is used when the caller does not ask for a page size.
	DefaultPageLimit = 10
	// MaxPageLimit bounds the page size of listings.
	MaxPageLimit = 50
	// MaxPageNumber bounds the page number so that Offset cannot overflow.
	// Keep in sync with the PageQuery validation tag.
	MaxPageNumber = 1_000_000
)

// Page selects a window of a listing. Number starts at 1.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// SendFileDetails is one row of the "files I sent" projection.
type SendFileDetails struct {
	LinkID         uuid.UUID  `json:"link_id"`
	FileID         uuid.UUID  `json:"file_id"`
	Filename       string     `json:"file_name"`
	RecipientEmail *string    `json:"recipient_email,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	State          LinkState  `json:"state"`
}

// ReceiveFileDetails is one row of the "files I received" projection.
// Only links that are currently live are listed.
type ReceiveFileDetails struct {
	LinkID         uuid.UUID  `json:"link_id"`
	Token          string     `json:"shared_id"`
	FileID         uuid.UUID  `json:"file_id"`
	Filename       string     `json:"file_name"`
	SenderEmail    *string    `json:"sender_email,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SentFilesPage is a page of the sent projection plus the total row count.
type SentFilesPage struct {
	Files   []SendFileDetails
	Results int
}

// ReceivedFilesPage is a page of the received projection plus the total
// row count.
type ReceivedFilesPage struct {
	Files   []ReceiveFileDetails
	Results int
}
