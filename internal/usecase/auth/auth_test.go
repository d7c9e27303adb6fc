package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/users"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/identity"
	"github.com/adotapet/adota-pet-api/internal/models"
)

// -------------------------
// Test doubles
// -------------------------

type fakeUsersRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[uint]models.User{}, nextID: 1}
}

func (r *fakeUsersRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUsersRepo) GetByAuthID(_ context.Context, authID string) (*models.User, error) {
	for _, u := range r.users {
		if u.AuthID == authID {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUsersRepo) EmailTaken(_ context.Context, email string, excludeID uint) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsersRepo) Create(_ context.Context, u *models.User) error {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUsersRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return errors.New("update: missing row")
	}
	r.users[u.ID] = *u
	return nil
}

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, zap.NewNop())
}

func str(s string) *string { return &s }

func register(t *testing.T, repo *fakeUsersRepo, email, authID string, password *string) *models.User {
	t.Helper()
	uc := NewRegisterUser(repo, nil, testDispatcher())
	user, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Ana Souza",
		Email:    email,
		Phone:    "+55 11 99999-0001",
		AuthID:   authID,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// -------------------------
// Register
// -------------------------

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newFakeUsersRepo()
	user := register(t, repo, "  Ana@Example.COM ", "auth-1", nil)

	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.Nil(t, user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUsersRepo()
	register(t, repo, "ana@example.com", "auth-1", nil)

	uc := NewRegisterUser(repo, nil, testDispatcher())
	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Name: "Other", Email: "ANA@example.com", AuthID: "auth-2",
	})

	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "email_taken", ae.Code)
	assert.Len(t, repo.users, 1)
}

func TestRegisterStoresBcryptHash(t *testing.T) {
	repo := newFakeUsersRepo()
	user := register(t, repo, "ana@example.com", "auth-1", str("s3cret-pw"))

	require.NotNil(t, user.PasswordHash)
	assert.NotContains(t, *user.PasswordHash, "s3cret-pw")
	assert.True(t, strings.HasPrefix(*user.PasswordHash, "$2"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("s3cret-pw")))
}

// -------------------------
// Login
// -------------------------

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeUsersRepo()
	register(t, repo, "ana@example.com", "auth-1", str("s3cret-pw"))

	provider := identity.NewJWTProvider("test-secret")
	uc := NewLoginUser(repo, provider)

	res, err := uc.Execute(context.Background(), " Ana@Example.com ", "s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "ana@example.com", res.User.Email)

	sub, err := provider.VerifyToken(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, "auth-1", sub.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUsersRepo()
	register(t, repo, "ana@example.com", "auth-1", str("s3cret-pw"))

	uc := NewLoginUser(repo, identity.NewJWTProvider("test-secret"))
	_, err := uc.Execute(context.Background(), "ana@example.com", "wrong")

	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ae.Status)
	assert.Equal(t, "invalid_credentials", ae.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := NewLoginUser(newFakeUsersRepo(), identity.NewJWTProvider("test-secret"))

	_, err := uc.Execute(context.Background(), "nobody@example.com", "whatever")

	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ae.Status)
	assert.Equal(t, "invalid_credentials", ae.Code, "unknown email and wrong password look identical")
}

func TestLoginProviderOnlyAccount(t *testing.T) {
	repo := newFakeUsersRepo()
	register(t, repo, "ana@example.com", "auth-1", nil)

	uc := NewLoginUser(repo, identity.NewJWTProvider("test-secret"))
	_, err := uc.Execute(context.Background(), "ana@example.com", "anything")

	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ae.Status)
}

// -------------------------
// Profile update
// -------------------------

func TestUpdateProfileMerges(t *testing.T) {
	repo := newFakeUsersRepo()
	user := register(t, repo, "ana@example.com", "auth-1", nil)

	uc := NewUpdateProfile(repo, nil)
	updated, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID: user.ID,
		Name:   str("Ana S."),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana S.", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, "+55 11 99999-0001", updated.Phone)
}

func TestUpdateProfileEmailUniqueness(t *testing.T) {
	repo := newFakeUsersRepo()
	user := register(t, repo, "ana@example.com", "auth-1", nil)
	register(t, repo, "bia@example.com", "auth-2", nil)

	uc := NewUpdateProfile(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID: user.ID,
		Email:  str("bia@example.com"),
	})
	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "email_taken", ae.Code)

	// Re-submitting your own address is not a conflict.
	updated, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID: user.ID,
		Email:  str("ANA@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", updated.Email)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	uc := NewUpdateProfile(newFakeUsersRepo(), nil)

	_, err := uc.Execute(context.Background(), UpdateProfileInput{UserID: 404, Name: str("x")})

	ae, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Status)
}

// Guards against the token TTL silently drifting shorter than a session.
func TestTokenTTL(t *testing.T) {
	assert.GreaterOrEqual(t, tokenTTL, time.Hour)
}
