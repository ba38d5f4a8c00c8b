package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/12narendra45/RecipeEase1/internal/notification"
)

// Service manages the account lifecycle: registration, credential
// verification and profile lookup.
type Service struct {
	repo     Repository
	notifier notification.Notifier
}

// NewService creates a new account service. The notifier may be nil.
func NewService(repo Repository, notifier notification.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Register creates a new account with a bcrypt-hashed password. The plaintext
// is discarded immediately after hashing. The pre-existence check is a fast
// path only; the repository's uniqueness guard remains the source of truth
// under concurrent registrations.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Account, error) {
	if in.Name == "" || in.Email == "" || in.Username == "" || in.Password == "" {
		return Account{}, ErrMissingFields
	}

	taken, err := s.repo.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return Account{}, fmt.Errorf("existence check: %w", err)
	}
	if taken {
		return Account{}, ErrEmailOrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}

	acct := Account{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		Phone:        in.Phone,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, acct); err != nil {
		return Account{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindAccountRegistered,
			Destination: acct.Email,
			Body:        "Welcome to RecipeEase, " + acct.Name,
		})
	}

	return acct, nil
}

// Authenticate verifies an identifier/password pair. The identifier is
// matched against either email or username. Every failure mode collapses to
// ErrInvalidCredentials so callers cannot tell an unknown user from a wrong
// password.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (Account, error) {
	if identifier == "" || password == "" {
		return Account{}, ErrInvalidCredentials
	}

	acct, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, fmt.Errorf("account lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	return acct, nil
}

// GetByID fetches an account by its identifier. Returns ErrNotFound when the
// account no longer exists (e.g. removed out-of-band after token issuance).
func (s *Service) GetByID(ctx context.Context, id string) (Account, error) {
	return s.repo.FindByID(ctx, id)
}
