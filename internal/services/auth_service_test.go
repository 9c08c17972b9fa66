package services_test

import (
	"io"
	"log"
	"os"
	"testing"

	"renewrubber/internal/models"
	"renewrubber/internal/services"
	"renewrubber/internal/storage"

	"github.com/stretchr/testify/assert"
)

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func newAuthService(store storage.Store) *services.AuthService {
	// Zero delays: tests exercise semantics, not the simulated latency.
	return services.NewAuthService(store, "test_jwt_secret", services.AuthDelays{})
}

func TestAuthService_SignIn(t *testing.T) {
	auth := newAuthService(storage.NewMemoryStore())

	// Missing credentials reject before any state mutation.
	_, _, err := auth.SignIn("", "password123")
	assert.ErrorIs(t, err, services.ErrCredentialsRequired)
	_, _, err = auth.SignIn("climber@example.com", "")
	assert.ErrorIs(t, err, services.ErrCredentialsRequired)
	assert.Nil(t, auth.CurrentUser())

	// Any non-empty pair succeeds and yields the demo user for that email.
	user, token, err := auth.SignIn("climber@example.com", "whatever")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "climber@example.com", user.Email)
	assert.Equal(t, "Alex van der Berg", user.FullName)

	claims, err := auth.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
}

func TestAuthService_SignUpPasswordRules(t *testing.T) {
	auth := newAuthService(storage.NewMemoryStore())

	// Five characters is too short.
	_, _, err := auth.SignUp("a@b.com", "12345", services.SignUpMetadata{FullName: "X"})
	assert.ErrorIs(t, err, services.ErrPasswordTooShort)
	assert.Nil(t, auth.CurrentUser())

	// Six characters is enough; the metadata lands on the user.
	user, token, err := auth.SignUp("a@b.com", "123456", services.SignUpMetadata{FullName: "X"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "X", user.FullName)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestAuthService_SessionHydration(t *testing.T) {
	store := storage.NewMemoryStore()

	auth := newAuthService(store)
	_, _, err := auth.SignUp("a@b.com", "123456", services.SignUpMetadata{
		FullName:     "X",
		PreferredGym: "Boulderhal Sterk",
	})
	assert.NoError(t, err)

	// A fresh service over the same KV store hydrates the session
	// synchronously in its constructor.
	rehydrated := newAuthService(store)
	user := rehydrated.CurrentUser()
	assert.NotNil(t, user)
	assert.Equal(t, "X", user.FullName)
	assert.Equal(t, "Boulderhal Sterk", user.PreferredGym)
}

func TestAuthService_SignOutClearsSession(t *testing.T) {
	store := storage.NewMemoryStore()
	auth := newAuthService(store)

	_, _, err := auth.SignIn("climber@example.com", "pw")
	assert.NoError(t, err)
	assert.NotNil(t, auth.CurrentUser())

	assert.NoError(t, auth.SignOut())
	assert.Nil(t, auth.CurrentUser())

	// Cleared in storage too, not just in memory.
	assert.Nil(t, newAuthService(store).CurrentUser())
}

func TestAuthService_UpdateProfile(t *testing.T) {
	auth := newAuthService(storage.NewMemoryStore())

	// No session yet.
	_, err := auth.UpdateProfile(models.ProfileUpdate{FullName: "Y"})
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)

	_, _, err = auth.SignUp("a@b.com", "123456", services.SignUpMetadata{FullName: "X"})
	assert.NoError(t, err)

	// Merge semantics: empty fields stay untouched.
	user, err := auth.UpdateProfile(models.ProfileUpdate{Phone: "+31 6 9999 0000"})
	assert.NoError(t, err)
	assert.Equal(t, "X", user.FullName)
	assert.Equal(t, "+31 6 9999 0000", user.Phone)
}

func TestAuthService_ChangePassword(t *testing.T) {
	auth := newAuthService(storage.NewMemoryStore())

	assert.ErrorIs(t, auth.ChangePassword("123456"), services.ErrNotAuthenticated)

	_, _, err := auth.SignUp("a@b.com", "123456", services.SignUpMetadata{FullName: "X"})
	assert.NoError(t, err)

	assert.ErrorIs(t, auth.ChangePassword("short"), services.ErrPasswordTooShort)
	assert.NoError(t, auth.ChangePassword("longenough"))
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	auth := newAuthService(storage.NewMemoryStore())

	_, err := auth.ValidateToken("not.a.token")
	assert.Error(t, err)
}
