package business

import (
	"time"

	"github.com/cityhall-dev/licensing-management/internal/licensing"
)

// License lifecycle statuses.
const (
	StatusApplicationSubmitted = "application_submitted"
	StatusInProcess            = "in_process"
	StatusActive               = "active"
	StatusExpired              = "expired"
	StatusRevoked              = "revoked"
	StatusClosed               = "closed"
)

// ValidStatuses in the order they appear on the licensing journey.
var ValidStatuses = []string{
	StatusApplicationSubmitted,
	StatusInProcess,
	StatusActive,
	StatusExpired,
	StatusRevoked,
	StatusClosed,
}

// Business is the entity applying for or holding a license. Every business
// is classified against exactly one licensing-item catalog entry.
type Business struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	BusinessName string `json:"business_name" gorm:"column:business_name;not null"`
	Address      string `json:"address" gorm:"not null"`
	OwnerName    string `json:"owner_name" gorm:"column:owner_name;not null"`
	// OwnerID holds the owner's national ID or company registration number.
	OwnerID      string `json:"owner_id" gorm:"column:owner_id;not null"`
	ContactPhone string `json:"contact_phone" gorm:"column:contact_phone;not null"`
	Email        string `json:"email,omitempty"`

	LicenseNumber  *string    `json:"license_number" gorm:"column:license_number;uniqueIndex"`
	Status         string     `json:"status" gorm:"default:application_submitted"`
	IssueDate      *time.Time `json:"issue_date" gorm:"column:issue_date;type:date"`
	ExpirationDate *time.Time `json:"expiration_date" gorm:"column:expiration_date;type:date"`

	LicensingItemID int64           `json:"licensing_item_id" gorm:"column:licensing_item_id;not null"`
	LicensingItem   *licensing.Item `json:"licensing_item,omitempty" gorm:"foreignKey:LicensingItemID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Business) TableName() string {
	return "businesses"
}
