package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aurabank/aura-api/internal/cqrs"
	"github.com/aurabank/aura-api/internal/events"
	"github.com/aurabank/aura-api/internal/metrics"
	"github.com/aurabank/aura-api/internal/models"
	"github.com/aurabank/aura-api/internal/repository"
	"github.com/aurabank/aura-api/internal/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountService authenticates users, lists their accounts and moves funds
// between main accounts. All balance reads and writes go through mu, so a
// transfer's check and its debit/credit happen as one step.
type AccountService struct {
	users     repository.UserRepository
	publisher EventPublisher
	logger    zerolog.Logger

	// checkPassword compares a password with a bcrypt hash.
	checkPassword func(password, hash string) bool

	mu sync.RWMutex
}

// unknownUserHash is compared against when the user does not exist, so a
// failed lookup takes as long as a wrong password.
var unknownUserHash = sync.OnceValue(func() string {
	hash, err := utils.HashPassword("unknown-user")
	if err != nil {
		log.Error().Err(err).Msg("failed to build unknown user hash")
	}
	return hash
})

func NewAccountService(users repository.UserRepository, publisher EventPublisher) *AccountService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &AccountService{
		users:         users,
		publisher:     publisher,
		logger:        log.With().Str("pkg", "service").Logger(),
		checkPassword: utils.CheckPassword,
	}
}

// Authenticate never tells an unknown user apart from a wrong password.
func (s *AccountService) Authenticate(q cqrs.LoginQuery) models.CredentialsResult {
	user, err := s.users.GetByID(q.ID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error().Err(err).Str("userId", q.ID).Msg("user lookup failed during login")
	}

	hash := unknownUserHash()
	if err == nil {
		hash = user.PasswordHash
	}
	success := s.checkPassword(q.Password, hash) && err == nil
	metrics.ObserveLogin(success)
	return models.CredentialsResult{Success: success}
}

// ListAccounts returns copies of the user's accounts in stored order, or an
// empty slice for an unknown user.
func (s *AccountService) ListAccounts(q cqrs.ListAccountsQuery) []models.Account {
	user, err := s.users.GetByID(q.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Error().Err(err).Str("userId", q.UserID).Msg("user lookup failed while listing accounts")
		}
		return []models.Account{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]models.Account, len(user.Accounts))
	for i, a := range user.Accounts {
		accounts[i] = *a
	}
	return accounts
}

// Transfer debits the sender's main account and credits the recipient's.
// Unknown users and negative amounts are reported as InvalidArgumentError.
// A missing main account or insufficient funds is not an error: the result
// has Success=false and no balance changes.
func (s *AccountService) Transfer(ctx context.Context, cmd cqrs.TransferCommand) (models.TransferResult, error) {
	sender, err := s.lookup(cmd.SenderID, ErrSenderNotFound)
	if err != nil {
		return models.TransferResult{}, err
	}
	recipient, err := s.lookup(cmd.RecipientID, ErrRecipientNotFound)
	if err != nil {
		return models.TransferResult{}, err
	}
	if cmd.Amount.IsNegative() {
		metrics.ObserveTransfer(metrics.TransferInvalid)
		return models.TransferResult{}, ErrNegativeAmount
	}

	event, ok := s.move(sender, recipient, cmd.Amount)
	if !ok {
		metrics.ObserveTransfer(metrics.TransferRejected)
		s.logger.Info().
			Str("senderId", cmd.SenderID).
			Str("recipientId", cmd.RecipientID).
			Str("amount", cmd.Amount.String()).
			Msg("transfer rejected")
		return models.TransferResult{Success: false}, nil
	}
	metrics.ObserveTransfer(metrics.TransferSucceeded)

	event.TransferID = utils.GenerateID("trf")
	event.SenderID = cmd.SenderID
	event.RecipientID = cmd.RecipientID
	if err := s.publisher.Publish(ctx, events.TransferEventsStream, events.TransferCompleted, event); err != nil {
		s.logger.Warn().Err(err).Str("transferId", event.TransferID).Msg("failed to publish transfer.completed event")
	}
	s.logger.Info().
		Str("transferId", event.TransferID).
		Str("senderAccountId", event.SenderAccountID).
		Str("recipientAccountId", event.RecipientAccountID).
		Str("amount", cmd.Amount.String()).
		Msg("transfer completed")

	return models.TransferResult{Success: true}, nil
}

func (s *AccountService) lookup(id string, notFound error) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if errors.Is(err, repository.ErrUserNotFound) {
		metrics.ObserveTransfer(metrics.TransferInvalid)
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", id, err)
	}
	return user, nil
}

// move applies the balance change under the write lock. When sender and
// recipient share a main account the debit and credit cancel out.
func (s *AccountService) move(sender, recipient *models.User, amount decimal.Decimal) (*events.TransferCompletedEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := sender.MainAccount()
	if !ok {
		return nil, false
	}
	to, ok := recipient.MainAccount()
	if !ok {
		return nil, false
	}
	if from.Balance.Sub(amount).IsNegative() {
		return nil, false
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)

	return &events.TransferCompletedEvent{
		SenderAccountID:    from.ID,
		RecipientAccountID: to.ID,
		Amount:             amount,
		SenderBalance:      from.Balance,
		RecipientBalance:   to.Balance,
	}, true
}
