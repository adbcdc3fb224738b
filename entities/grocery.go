package entities

import (
	"time"

	"github.com/google/uuid"
)

// GroceryBatch is one purchased quantity of a named item. Multiple batches of
// the same item are tracked separately so consumption can run oldest-first.
type GroceryBatch struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"index" json:"user_id"`
	Name         string     `json:"name"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"` // kg, g, L, ml, pcs
	Price        float64    `json:"price"`
	PurchaseDate time.Time  `json:"purchase_date"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	BillScanID   *string    `json:"bill_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type BillScan struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	ImageURL string    `json:"image_url"`
	Status   string    `json:"status"` // Pending, Processed, Failed
	RawText  string    `gorm:"type:text" json:"raw_text,omitempty"`

	User    *User           `gorm:"foreignKey:UserID"`
	Batches []*GroceryBatch `gorm:"foreignKey:BillScanID"`
	Timestamp
}
