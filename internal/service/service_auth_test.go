package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/security"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSignKey = "test-sign-key"

func newTestAuthService(t *testing.T, repo store.AccountRepository, opts ...security.TokenOption) AuthService {
	t.Helper()

	hasher, err := security.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	tokens, err := security.NewTokenManager(testSignKey, "test-issuer", opts...)
	require.NoError(t, err)

	return NewAuthService(repo, hasher, tokens, logger.Nop())
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_NormalisesEmailAndHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)

	repo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account models.Account) (models.Account, error) {
			assert.Equal(t, "alice@example.com", account.Email)
			assert.NotEmpty(t, account.ID)
			assert.NotEqual(t, "s3cret-pass", account.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3cret-pass")))
			return account, nil
		})

	svc := newTestAuthService(t, repo)
	account, err := svc.Register(context.Background(), "  Alice@Example.COM ", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{name: "empty email", email: " ", password: "pw", want: ErrInvalidEmail},
		{name: "not an address", email: "alice", password: "pw", want: ErrInvalidEmail},
		{name: "display name form", email: "Alice <alice@example.com>", password: "pw", want: ErrInvalidEmail},
		{name: "empty password", email: "alice@example.com", password: "", want: ErrEmptyPassword},
		{name: "password over 72 bytes", email: "alice@example.com", password: strings.Repeat("x", 73), want: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockAccountRepository(ctrl)
			repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Times(0)

			svc := newTestAuthService(t, repo)
			_, err := svc.Register(context.Background(), tt.email, tt.password)

			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrEmailAlreadyExists)

	svc := newTestAuthService(t, repo)
	_, err := svc.Register(context.Background(), "alice@example.com", "pw")

	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegister_DuplicateInAnyCasing(t *testing.T) {
	svc := newTestAuthService(t, store.NewMemoryAccountRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "pw-one")
	require.NoError(t, err)

	for _, email := range []string{"alice@example.com", "ALICE@example.com", " Alice@Example.Com "} {
		_, err = svc.Register(ctx, email, "pw-two")
		assert.ErrorIs(t, err, ErrDuplicateAccount, email)
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	dbErr := errors.New("connection reset")
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, dbErr)

	svc := newTestAuthService(t, repo)
	_, err := svc.Register(context.Background(), "alice@example.com", "pw")

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrDuplicateAccount)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService(t, store.NewMemoryAccountRepository())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice@example.com", "correct horse")
	require.NoError(t, err)

	account, err := svc.Login(ctx, "ALICE@example.com ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, account.ID)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t, store.NewMemoryAccountRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "correct horse")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice@example.com", "battery staple")
	_, unknownEmail := svc.Login(ctx, "bob@example.com", "correct horse")
	_, tooLong := svc.Login(ctx, "alice@example.com", strings.Repeat("x", 80))
	_, empty := svc.Login(ctx, "", "")

	for _, err := range []error{wrongPassword, unknownEmail, tooLong, empty} {
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, ErrInvalidCredentials.Error(), err.Error())
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	dbErr := errors.New("db down")
	repo.EXPECT().FindAccountByEmail(gomock.Any(), "alice@example.com").Return(models.Account{}, dbErr)

	svc := newTestAuthService(t, repo)
	_, err := svc.Login(context.Background(), "alice@example.com", "pw")

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_CorruptStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	repo.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).
		Return(models.Account{ID: "a1", Email: "alice@example.com", PasswordHash: "not-bcrypt"}, nil)

	svc := newTestAuthService(t, repo)
	_, err := svc.Login(context.Background(), "alice@example.com", "pw")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestCreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(t, store.NewMemoryAccountRepository())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Account{ID: "acc-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", parsed.AccountID)
}

func TestCreateToken_EmptyAccountID(t *testing.T) {
	svc := newTestAuthService(t, store.NewMemoryAccountRepository())

	_, err := svc.CreateToken(context.Background(), models.Account{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestParseToken_FailuresAreUnauthenticated(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	svc := newTestAuthService(t, store.NewMemoryAccountRepository(), security.WithClock(clock))
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Account{ID: "acc-1"})
	require.NoError(t, err)

	now = now.Add(security.SessionTTL)
	_, err = svc.ParseToken(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, security.ErrTokenExpired)

	_, err = svc.ParseToken(ctx, "garbage")
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, security.ErrMalformedToken)
}
