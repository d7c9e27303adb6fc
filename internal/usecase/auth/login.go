package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/adotapet/adota-pet-api/internal/domain/users"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
)

const tokenTTL = 24 * time.Hour

// TokenIssuer signs provider-compatible tokens for locally-credentialed
// users.
type TokenIssuer interface {
	IssueToken(authID string, ttl time.Duration) (string, error)
}

type LoginResult struct {
	User  *models.User
	Token string
}

type LoginUser struct {
	repo   domain.Repository
	issuer TokenIssuer
}

func NewLoginUser(repo domain.Repository, issuer TokenIssuer) *LoginUser {
	return &LoginUser{repo: repo, issuer: issuer}
}

func (uc *LoginUser) Execute(ctx context.Context, email, password string) (*LoginResult, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Unauthorized("invalid_credentials", "Invalid email or password.")
		}
		return nil, err
	}

	// Accounts without a local password authenticate through the identity
	// provider only.
	if user.PasswordHash == nil {
		return nil, httperr.Unauthorized("invalid_credentials", "Invalid email or password.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.Unauthorized("invalid_credentials", "Invalid email or password.")
	}

	token, err := uc.issuer.IssueToken(user.AuthID, tokenTTL)
	if err != nil {
		return nil, httperr.Internal("token_issue_failed", "Could not issue a token.", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}
