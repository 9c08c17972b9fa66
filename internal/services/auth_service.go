package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"renewrubber/internal/models"
	"renewrubber/internal/storage"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// sessionStorageKey is the namespaced key the session mirrors itself under,
// matching the original application's local-storage key.
const sessionStorageKey = "renewrubber_user"

// Auth errors surfaced to callers as banner messages.
var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrNotAuthenticated    = errors.New("not authenticated")
)

// AuthDelays are the fixed artificial latencies of the simulated identity
// provider, one per operation. Use the zero value in tests.
type AuthDelays struct {
	SignIn  time.Duration
	SignUp  time.Duration
	SignOut time.Duration
	Profile time.Duration
}

// DefaultAuthDelays mirrors the original mock client's latencies.
var DefaultAuthDelays = AuthDelays{
	SignIn:  500 * time.Millisecond,
	SignUp:  500 * time.Millisecond,
	SignOut: 200 * time.Millisecond,
	Profile: 300 * time.Millisecond,
}

// SignUpMetadata carries the profile fields collected at sign-up.
type SignUpMetadata struct {
	FullName     string `json:"fullName"`
	PreferredGym string `json:"preferredGym,omitempty"`
}

// sessionRecord is what gets persisted: the user plus a bcrypt hash of the
// most recent password. Sign-in never checks the hash (the provider is
// simulated and always succeeds), but sign-up and password changes keep it
// current so a real provider can take over the record.
type sessionRecord struct {
	User         models.User `json:"user"`
	PasswordHash string      `json:"passwordHash,omitempty"`
}

// AuthService simulates a single-session identity provider: at most one
// current user, persisted to the KV store and hydrated synchronously at
// construction. Every operation either completes fully or rejects before
// any state mutation.
type AuthService struct {
	mu         sync.Mutex
	store      storage.Store
	jwtSecret  []byte
	tokenDurat time.Duration
	delays     AuthDelays
	current    *sessionRecord
}

// NewAuthService creates the auth store and hydrates any persisted session
// before returning, so auth state is "loaded" once the constructor is done.
func NewAuthService(store storage.Store, jwtSecret string, delays AuthDelays) *AuthService {
	s := &AuthService{
		store:      store,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
		delays:     delays,
	}
	s.hydrate()
	return s
}

func (s *AuthService) hydrate() {
	data, ok, err := s.store.Get(sessionStorageKey)
	if err != nil {
		log.Printf("Failed to read persisted session: %v", err)
		return
	}
	if !ok {
		return
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("Persisted session is malformed, ignoring: %v", err)
		return
	}
	s.current = &rec
}

// mockUser is the demo identity every sign-in resolves to, with the caller's
// email substituted in.
func mockUser(email string) models.User {
	created, _ := time.Parse(time.RFC3339, "2024-01-15T10:00:00Z")
	return models.User{
		ID:           "user_01",
		Email:        email,
		FullName:     "Alex van der Berg",
		Phone:        "+31 6 1234 5678",
		PreferredGym: "Monk Bouldergym Amsterdam",
		CreatedAt:    created,
	}
}

// SignIn authenticates a user. The provider is simulated: any non-empty
// email/password pair succeeds and deterministically yields the demo user
// for that email, replacing any existing session.
func (s *AuthService) SignIn(email, password string) (*models.User, string, error) {
	time.Sleep(s.delays.SignIn)

	if email == "" || password == "" {
		return nil, "", ErrCredentialsRequired
	}

	user := mockUser(email)
	rec := sessionRecord{User: user}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(&rec); err != nil {
		return nil, "", err
	}
	s.current = &rec

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	u := user
	return &u, token, nil
}

// SignUp creates a new user record with a fresh identifier and the current
// timestamp, persists it as the current session, and returns it with a
// session token. Fails on missing email/password or a password shorter than
// 6 characters.
func (s *AuthService) SignUp(email, password string, meta SignUpMetadata) (*models.User, string, error) {
	time.Sleep(s.delays.SignUp)

	if email == "" || password == "" {
		return nil, "", ErrCredentialsRequired
	}
	if len(password) < 6 {
		return nil, "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     meta.FullName,
		PreferredGym: meta.PreferredGym,
		CreatedAt:    time.Now().UTC(),
	}
	rec := sessionRecord{User: user, PasswordHash: string(hash)}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(&rec); err != nil {
		return nil, "", err
	}
	s.current = &rec

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	u := user
	return &u, token, nil
}

// SignOut clears the current session from memory and storage.
func (s *AuthService) SignOut() error {
	time.Sleep(s.delays.SignOut)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(sessionStorageKey); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	s.current = nil
	return nil
}

// UpdateProfile merges the given fields into the current user and persists
// the result. Fails when no session exists. Empty fields are left untouched.
func (s *AuthService) UpdateProfile(update models.ProfileUpdate) (*models.User, error) {
	time.Sleep(s.delays.Profile)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNotAuthenticated
	}

	rec := *s.current
	if update.FullName != "" {
		rec.User.FullName = update.FullName
	}
	if update.Phone != "" {
		rec.User.Phone = update.Phone
	}
	if update.PreferredGym != "" {
		rec.User.PreferredGym = update.PreferredGym
	}

	if err := s.persistLocked(&rec); err != nil {
		return nil, err
	}
	s.current = &rec

	u := rec.User
	return &u, nil
}

// ChangePassword re-hashes and stores the new password on the session
// record. Fails when no session exists or the password is too short.
func (s *AuthService) ChangePassword(newPassword string) error {
	time.Sleep(s.delays.Profile)

	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotAuthenticated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	rec := *s.current
	rec.PasswordHash = string(hash)
	if err := s.persistLocked(&rec); err != nil {
		return err
	}
	s.current = &rec
	return nil
}

// ResetPassword simulates sending a reset email. A real provider would own
// this flow end to end.
func (s *AuthService) ResetPassword(email string) error {
	time.Sleep(s.delays.Profile)
	log.Printf("Simulated password reset email to %s", email)
	return nil
}

// CurrentUser returns a copy of the signed-in user, or nil when no session
// exists.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	u := s.current.User
	return &u
}

// ValidateToken parses and validates a session token, returning the claims
// if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) generateToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

func (s *AuthService) persistLocked(rec *sessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.store.Set(sessionStorageKey, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
