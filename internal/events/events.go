package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	TransferCompleted = "transfer.completed"
)

// Stream names
const (
	TransferEventsStream = "transfer.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// TransferCompletedEvent carries the main account balances after a transfer.
type TransferCompletedEvent struct {
	TransferID         string          `json:"transferId"`
	SenderID           string          `json:"senderId"`
	RecipientID        string          `json:"recipientId"`
	SenderAccountID    string          `json:"senderAccountId"`
	RecipientAccountID string          `json:"recipientAccountId"`
	Amount             decimal.Decimal `json:"amount"`
	SenderBalance      decimal.Decimal `json:"senderBalance"`
	RecipientBalance   decimal.Decimal `json:"recipientBalance"`
}
