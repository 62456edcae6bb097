package repository

import (
	"errors"
	"fmt"

	"github.com/aurabank/aura-api/internal/models"
	"github.com/aurabank/aura-api/internal/utils"
	"github.com/shopspring/decimal"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository resolves users by identifier. Returned users are shared
// handles: changes to their account balances are seen by later lookups.
type UserRepository interface {
	GetByID(id string) (*models.User, error)
}

// SeedUser is the plaintext description of a directory entry.
type SeedUser struct {
	ID        string
	FirstName string
	LastName  string
	Password  string
	Accounts  []SeedAccount
}

type SeedAccount struct {
	ID      string
	IsMain  bool
	Balance string
}

// DefaultSeed is the fixed user list loaded at startup.
func DefaultSeed() []SeedUser {
	return []SeedUser{
		{
			ID: "1234", FirstName: "Pierre", LastName: "Brisette", Password: "p@sswOrd",
			Accounts: []SeedAccount{
				{ID: "1", IsMain: true, Balance: "2354.23"},
				{ID: "2", IsMain: false, Balance: "235.22"},
			},
		},
		{
			ID: "5678", FirstName: "Gustave", LastName: "Charbonneau", Password: "T0pSecr3t",
			Accounts: []SeedAccount{
				{ID: "3", IsMain: false, Balance: "24.53"},
				{ID: "4", IsMain: true, Balance: "10032.21"},
			},
		},
	}
}

// MemoryUserRepository is the in-process user directory. The user list is
// fixed after construction and never persisted.
type MemoryUserRepository struct {
	users []*models.User
	byID  map[string]*models.User
}

func NewMemoryUserRepository(seed []SeedUser) (*MemoryUserRepository, error) {
	r := &MemoryUserRepository{byID: make(map[string]*models.User, len(seed))}
	accountIDs := make(map[string]string)

	for _, s := range seed {
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate user id %q", s.ID)
		}
		hash, err := utils.HashPassword(s.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for user %s: %w", s.ID, err)
		}
		user := &models.User{
			ID:           s.ID,
			FirstName:    s.FirstName,
			LastName:     s.LastName,
			PasswordHash: hash,
			Accounts:     make([]*models.Account, 0, len(s.Accounts)),
		}
		for _, sa := range s.Accounts {
			if owner, dup := accountIDs[sa.ID]; dup {
				return nil, fmt.Errorf("account id %q of user %s already owned by user %s", sa.ID, s.ID, owner)
			}
			balance, err := decimal.NewFromString(sa.Balance)
			if err != nil {
				return nil, fmt.Errorf("invalid balance for account %s: %w", sa.ID, err)
			}
			accountIDs[sa.ID] = s.ID
			user.Accounts = append(user.Accounts, &models.Account{
				ID:      sa.ID,
				IsMain:  sa.IsMain,
				Balance: balance,
			})
		}
		r.users = append(r.users, user)
		r.byID[user.ID] = user
	}
	return r, nil
}

func (r *MemoryUserRepository) GetByID(id string) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Len returns the number of users in the directory.
func (r *MemoryUserRepository) Len() int {
	return len(r.users)
}
