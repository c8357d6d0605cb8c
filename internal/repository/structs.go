package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("not found")

// Item statuses. "Rejected" is transient: a rejected claim lands the row
// straight back on StatusAvailable, so it never persists.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusReturned  = "returned"
)

const (
	KindLost  = "lost"
	KindFound = "found"
)

var Categories = []string{"electronics", "jewelry", "clothing", "accessories", "documents", "other"}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Item is the central record. The claim substructure lives inline as
// nullable columns: it is populated while status != available and the
// token columns carry unique indexes for O(1) lookup.
type Item struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Kind        string    `db:"kind"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	EventDate   time.Time `db:"event_date"`
	Address     string    `db:"address"`
	City        string    `db:"city"`
	State       string    `db:"state"`
	Images      []string  `db:"images"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	ClaimantID        *string    `db:"claimant_id"`
	ClaimantFirstName *string    `db:"claimant_first_name"`
	ClaimantLastName  *string    `db:"claimant_last_name"`
	ClaimantEmail     *string    `db:"claimant_email"`
	ClaimantPhone     *string    `db:"claimant_phone"`
	ClaimantMessage   *string    `db:"claimant_message"`
	ClaimFiledAt      *time.Time `db:"claim_filed_at"`
	AcceptToken       *string    `db:"accept_token"`
	RejectToken       *string    `db:"reject_token"`
	ClaimExpiresAt    *time.Time `db:"claim_expires_at"`
}

// Claim is the write-side view of the claim substructure, built by the
// lifecycle engine when a claim is filed.
type Claim struct {
	ClaimantID string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Message    string
	FiledAt    time.Time
	Accept     string
	Reject     string
	ExpiresAt  time.Time
}

// ItemFilter narrows List queries. Zero values mean "no constraint".
type ItemFilter struct {
	Kind     string
	Category string
	Status   string
	Search   string
}

type User struct {
	ID        string    `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

// OutboxTask is a pending audit event waiting for the Kafka publisher.
type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// AuditLogPayload is the JSON document shipped to the audit topic for every
// mutating API call.
type AuditLogPayload struct {
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"user_id,omitempty"`
	ItemID     string    `json:"item_id,omitempty"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	Action     string    `json:"action"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
}
