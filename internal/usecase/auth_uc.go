package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthUC implements the email+password sign-in with auto-registration: a
// sign-in that fails because the account does not exist (or the credential is
// rejected) falls through to an account-creation attempt with the same
// credentials instead of surfacing a hard "no such user" error.
type AuthUC struct {
	users domain.UserRepo
}

func NewAuthUC(users domain.UserRepo) *AuthUC {
	return &AuthUC{users: users}
}

// SignIn authenticates email+password. The returned bool reports whether a
// new account was created on the fly.
func (uc *AuthUC) SignIn(ctx context.Context, email, password string) (*domain.User, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, false, ErrInvalidCredentials
	}
	if len(password) < 6 {
		return nil, false, domain.ErrWeakPassword
	}

	u, err := uc.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		created, err := uc.register(ctx, email, password)
		if err != nil {
			return nil, false, err
		}
		return created, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
		return u, false, nil
	}

	// Mirror the provider behavior: a rejected credential also falls through
	// to registration, which then fails with email-already-in-use.
	if _, err := uc.register(ctx, email, password); err != nil {
		return nil, false, err
	}
	return nil, false, ErrInvalidCredentials
}

// EnsureAccount creates an account for an externally verified identity
// (Google sign-in) if none exists yet.
func (uc *AuthUC) EnsureAccount(ctx context.Context, email, name string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := uc.users.FindByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	u = &domain.User{Email: email, Name: name, CreatedAt: time.Now().UTC()}
	if err := uc.users.Create(ctx, u); err != nil && !errors.Is(err, domain.ErrEmailInUse) {
		return nil, err
	}
	return u, nil
}

func (uc *AuthUC) register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{Email: email, PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// AuthMessage maps an authentication failure to the user-facing message;
// unrecognized errors get the generic fallback.
func AuthMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Senha incorreta. Verifique seus dados."
	case errors.Is(err, domain.ErrEmailInUse):
		return "E-mail já cadastrado com outra senha."
	case errors.Is(err, domain.ErrWeakPassword):
		return "A senha deve ter pelo menos 6 caracteres."
	default:
		return "Ocorreu um erro desconhecido."
	}
}
