package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func validClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":    "user-1",
		"email": "an@example.com",
		"name":  "An Nguyen",
		"exp":   exp.Unix(),
	}
}

func TestSetTokenValid(t *testing.T) {
	store := &MemoryTokenStore{}
	m := NewManager(store, nil)

	token := makeToken(t, validClaims(time.Now().Add(time.Hour)))
	require.NoError(t, m.SetToken(token))

	assert.True(t, m.IsAuthenticated())
	user, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "an@example.com", user.Email)
	assert.Equal(t, "An Nguyen", user.Name)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, token, persisted)
}

func TestSetTokenExpired(t *testing.T) {
	store := &MemoryTokenStore{}
	m := NewManager(store, nil)

	token := makeToken(t, validClaims(time.Now().Add(-time.Minute)))
	err := m.SetToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	assert.False(t, m.IsAuthenticated())
	_, ok := m.Current()
	assert.False(t, ok)

	persisted, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, persisted, "expired token must not be persisted")
}

func TestSetTokenMissingIdentityFields(t *testing.T) {
	store := &MemoryTokenStore{}
	m := NewManager(store, nil)

	token := makeToken(t, jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	require.ErrorIs(t, m.SetToken(token), ErrInvalidToken)
	assert.False(t, m.IsAuthenticated())
}

func TestSetTokenMalformed(t *testing.T) {
	store := &MemoryTokenStore{}
	m := NewManager(store, nil)

	require.ErrorIs(t, m.SetToken("not-a-jwt"), ErrInvalidToken)
	assert.False(t, m.IsAuthenticated())

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestLogoutClearsEverything(t *testing.T) {
	store := &MemoryTokenStore{}
	m := NewManager(store, nil)

	require.NoError(t, m.SetToken(makeToken(t, validClaims(time.Now().Add(time.Hour)))))
	m.Logout()

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestInitializeRestoresValidSession(t *testing.T) {
	store := &MemoryTokenStore{}
	token := makeToken(t, validClaims(time.Now().Add(time.Hour)))
	require.NoError(t, store.Save(token))

	m := NewManager(store, nil)
	m.Initialize()

	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, token, m.Token())
}

func TestInitializeDiscardsStaleToken(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(makeToken(t, validClaims(time.Now().Add(-time.Hour)))))

	m := NewManager(store, nil)
	m.Initialize()

	assert.False(t, m.IsAuthenticated())
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted, "stale token must be discarded")
}

func TestOnChangeFiresOnTransitions(t *testing.T) {
	store := &MemoryTokenStore{}
	m := NewManager(store, nil)

	var transitions []bool
	m.OnChange(func(authenticated bool) {
		transitions = append(transitions, authenticated)
	})

	require.NoError(t, m.SetToken(makeToken(t, validClaims(time.Now().Add(time.Hour)))))
	m.Logout()
	m.Logout() // already guest, no second notification

	assert.Equal(t, []bool{true, false}, transitions)
}

func TestFileTokenStore(t *testing.T) {
	path := t.TempDir() + "/token"
	store := &FileTokenStore{Path: path}

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, store.Save("abc"))
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", loaded)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear()) // idempotent
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
