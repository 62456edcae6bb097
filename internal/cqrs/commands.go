package cqrs

import "github.com/shopspring/decimal"

// TransferCommand moves Amount from the sender's main account to the
// recipient's main account.
type TransferCommand struct {
	SenderID    string
	RecipientID string
	Amount      decimal.Decimal
}
