package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
	"budgeteer/internal/session"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor used for all stored digests.
const bcryptCost = 12

// Auth handles registration and login against the user store, maintaining
// the process-wide session on success.
type Auth struct {
	store   Storage
	session *session.Session
}

// NewAuth creates the authentication service.
func NewAuth(store Storage, sess *session.Session) *Auth {
	return &Auth{store: store, session: sess}
}

// Register creates a new user with a bcrypt password digest. The username
// must be unique.
func (a *Auth) Register(ctx context.Context, username, password, email, fullName string) (*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", common.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", common.ErrValidation)
	}

	taken, err := a.store.Users().Exists(ctx, UserByUsername(username))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username %q is already taken", common.ErrConflict, username)
	}

	digest, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := a.store.Users().Add(ctx, &model.User{
		Username:     username,
		PasswordHash: digest,
		Email:        email,
		FullName:     fullName,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, err
	}

	slog.Info("registered user", "username", username, "id", user.ID)
	return user, nil
}

// Login verifies the credentials and, on success, sets the current session
// user. A failed login leaves the session untouched.
func (a *Auth) Login(ctx context.Context, username, password string) (*model.User, error) {
	users, err := a.store.Users().Find(ctx, UserByUsername(username))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: unknown user %q", common.ErrUnauthorized, username)
	}
	user := users[0]

	ok, legacy := VerifyPassword(password, user.PasswordHash)
	if !ok {
		return nil, fmt.Errorf("%w: wrong password for %q", common.ErrUnauthorized, username)
	}

	if legacy {
		// The stored digest was a plain-text leftover from before hashing
		// was introduced. Upgrade it in place on first successful login.
		slog.Warn("upgrading legacy plain-text credential", "username", username)
		digest, hashErr := HashPassword(password)
		if hashErr != nil {
			return nil, hashErr
		}
		user.PasswordHash = digest
		if updateErr := a.store.Users().Update(ctx, user); updateErr != nil {
			return nil, updateErr
		}
	}

	a.session.Login(user)
	return user, nil
}

// Logout clears the current session.
func (a *Auth) Logout() {
	a.session.Logout()
}

// HashPassword produces an opaque digest for storage.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword checks a plaintext password against a stored digest. A
// digest that is not in bcrypt format is treated as a legacy plain-text
// credential and compared directly; legacy reports when that shim fired so
// callers can rehash.
func VerifyPassword(password, digest string) (ok, legacy bool) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == nil {
		return true, false
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, false
	}
	return password == digest, true
}
