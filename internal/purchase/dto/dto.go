package dto

import (
	"time"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

// SaveResult reports the committed purchase plus a non-fatal warning when
// the owned-item ledger could not be reconciled.
type SaveResult struct {
	Purchase    *model.Purchase `json:"purchase"`
	SyncWarning string          `json:"sync_warning,omitempty"`
}

// PurchaseSavedEvent is published to the purchase topic after every
// successful save.
type PurchaseSavedEvent struct {
	EventID   string              `json:"event_id"`
	EventType string              `json:"event_type"`
	Payload   PurchaseSavedDetail `json:"payload"`
	Timestamp time.Time           `json:"timestamp"`
}

type PurchaseSavedDetail struct {
	PurchaseID    string  `json:"purchase_id"`
	CollectionID  string  `json:"collection_id"`
	PaymentStatus string  `json:"payment_status"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
}
