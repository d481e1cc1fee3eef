package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/security"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/telemetry"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and session
// token lifecycle using an AccountRepository for persistence, bcrypt for
// passwords and a TokenManager for tokens.
type authService struct {
	// accountRepository is the data-access layer used to create and look up accounts.
	accountRepository store.AccountRepository

	hasher *security.PasswordHasher
	tokens *security.TokenManager
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, hasher *security.PasswordHasher, tokens *security.TokenManager, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hasher:            hasher,
		tokens:            tokens,
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// normalizeEmail trims and lowercases an email so that comparison and
// storage ignore case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

// Register creates a new account.
//
// The password is hashed before the repository is called. Returns the
// persisted account or:
//   - ErrInvalidEmail, ErrEmptyPassword, ErrPasswordTooLong (all wrap ErrValidation);
//   - ErrDuplicateAccount if the normalised email is taken;
//   - a wrapped storage error otherwise.
func (a *authService) Register(ctx context.Context, email, password string) (account models.Account, err error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.Register")
	defer func() { telemetry.EndSpan(span, err) }()

	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if err = validateEmail(email); err != nil {
		log.Debug().Msg("registration rejected: invalid email")
		return models.Account{}, err
	}

	hash, err := a.hasher.Hash(password)
	switch {
	case errors.Is(err, security.ErrEmptyPassword):
		return models.Account{}, ErrEmptyPassword
	case errors.Is(err, security.ErrPasswordTooLong):
		return models.Account{}, ErrPasswordTooLong
	case err != nil:
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account, err = a.accountRepository.CreateAccount(ctx, models.Account{
		ID:           a.ids.Generate(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Debug().Msg("registration rejected: email already registered")
			return models.Account{}, fmt.Errorf("%w: %w", ErrDuplicateAccount, err)
		}

		log.Err(err).Str("func", "*authService.Register").Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("account_id", account.ID).Msg("account registered")
	return account, nil
}

// Login authenticates an existing account.
//
// An unknown email is checked against a dummy hash, so both failure paths
// cost one bcrypt comparison and return the same ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (account models.Account, err error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.Login")
	defer func() { telemetry.EndSpan(span, err) }()

	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" || len(password) > security.MaxPasswordLength {
		a.hasher.VerifyDummy(password)
		return models.Account{}, ErrInvalidCredentials
	}

	found, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			a.hasher.VerifyDummy(password)
			log.Debug().Msg("login rejected: unknown account")
			return models.Account{}, ErrInvalidCredentials
		}

		log.Err(err).Str("func", "*authService.Login").Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(password, found.PasswordHash)
	if err != nil {
		log.Err(err).Str("account_id", found.ID).Msg("stored password hash is unusable")
		return models.Account{}, ErrInvalidCredentials
	}
	if !ok {
		log.Debug().Str("account_id", found.ID).Msg("login rejected: wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	return found, nil
}

// CreateToken issues a signed session token for the given account.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := a.tokens.Issue(account.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token issue failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw session token. Any failure (expired, bad
// signature, malformed) is reported as ErrUnauthenticated wrapping the
// security error, so callers need not inspect it.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.tokens.Verify(tokenString)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return token, nil
}
