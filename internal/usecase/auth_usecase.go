package usecase

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultSessionKey is where the current session is persisted.
const DefaultSessionKey = "moap_user"

// AdminProfile is the only account of the dashboard.
var AdminProfile = entities.SessionUser{
	ID:       "1",
	Username: "admin",
	Name:     "Administrador",
	Email:    "admin@moap.pt",
	Avatar:   "/admin-avatar-professional.jpg",
}

// SessionSource exposes who is operating the dashboard right now.
type SessionSource interface {
	CurrentUser(ctx context.Context) (entities.SessionUser, bool)
}

type IAuthUseCase interface {
	SessionSource
	Login(ctx context.Context, username, password string) (entities.SessionUser, error)
	Logout(ctx context.Context) error
}

// AuthConfig holds the configured credentials. Cost 0 means bcrypt.DefaultCost.
type AuthConfig struct {
	Username   string
	Password   string
	SessionKey string
	Cost       int
}

// AuthUseCase keeps one server-wide session: anonymous until a successful
// login, anonymous again after logout.
type AuthUseCase struct {
	kv       interfaces.IKeyValueStore
	key      string
	username string
	hash     []byte
	log      *logrus.Entry

	mu      sync.RWMutex
	current *entities.SessionUser
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(kv interfaces.IKeyValueStore, cfg AuthConfig, log *logrus.Entry) (*AuthUseCase, error) {
	cost := cfg.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cost)
	if err != nil {
		return nil, err
	}
	key := cfg.SessionKey
	if key == "" {
		key = DefaultSessionKey
	}
	username := cfg.Username
	if username == "" {
		username = AdminProfile.Username
	}
	return &AuthUseCase{kv: kv, key: key, username: username, hash: hash, log: log}, nil
}

// Restore rehydrates the session persisted by a previous process. A missing
// or unparsable record leaves the session anonymous.
func (u *AuthUseCase) Restore(ctx context.Context) {
	raw, found, err := u.kv.Get(ctx, u.key)
	if err != nil {
		u.log.WithError(err).Warn("session not restored")
		return
	}
	if !found {
		return
	}
	var user entities.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		u.log.WithField("key", u.key).Warn("ignoring unparsable session")
		return
	}
	u.mu.Lock()
	u.current = &user
	u.mu.Unlock()
}

// Login checks the credentials. The password hash is always compared so a
// wrong username costs the same as a wrong password.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.SessionUser, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(u.hash, []byte(password))
	if !userOK || passErr != nil {
		return entities.SessionUser{}, ErrInvalidCredentials
	}

	user := AdminProfile
	user.Username = u.username
	u.mu.Lock()
	u.current = &user
	u.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return entities.SessionUser{}, err
	}
	if err := u.kv.Put(ctx, u.key, raw); err != nil {
		u.log.WithError(err).Warn("session not persisted")
	}
	return user, nil
}

func (u *AuthUseCase) Logout(ctx context.Context) error {
	u.mu.Lock()
	u.current = nil
	u.mu.Unlock()
	return u.kv.Delete(ctx, u.key)
}

func (u *AuthUseCase) CurrentUser(context.Context) (entities.SessionUser, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.current == nil {
		return entities.SessionUser{}, false
	}
	return *u.current, true
}

// actingUser is the session user, or the administrator when nobody is logged
// in (CLI and background callers).
func actingUser(ctx context.Context, sessions SessionSource) entities.SessionUser {
	if sessions != nil {
		if user, ok := sessions.CurrentUser(ctx); ok {
			return user
		}
	}
	return AdminProfile
}
