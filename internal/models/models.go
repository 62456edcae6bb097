package models

import "github.com/shopspring/decimal"

func init() {
	// Balances go over the wire as JSON numbers, e.g. 2354.23.
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	PasswordHash string     `json:"-"`
	Accounts     []*Account `json:"accounts"`
}

// Account is owned by exactly one User. Balance is only changed by a transfer.
type Account struct {
	ID      string          `json:"id"`
	IsMain  bool            `json:"isMain"`
	Balance decimal.Decimal `json:"balance"`
}

// MainAccount returns the first account flagged as main, in stored order.
func (u *User) MainAccount() (*Account, bool) {
	for _, a := range u.Accounts {
		if a.IsMain {
			return a, true
		}
	}
	return nil, false
}

type CredentialsResult struct {
	Success bool `json:"success"`
}

type TransferResult struct {
	Success bool `json:"success"`
}
