package session

import (
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajivgeraev/skillswap-client/internal/models"
)

// signedToken собирает JWT с указанными claims для тестов
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenStore(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "nested", "token"))

	// Отсутствие файла — пустой токен без ошибки
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("my-token"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "my-token", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Повторная очистка не ошибка
	require.NoError(t, store.Clear())
}

func TestSessionRestoresFromStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	token := signedToken(t, jwt.MapClaims{"_id": "u1"})
	require.NoError(t, NewTokenStore(path).Save(token))

	sess, err := New(NewTokenStore(path))
	require.NoError(t, err)

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, token, sess.Token())
	assert.Equal(t, "u1", sess.UserID(), "ID восстанавливается из payload токена")
}

func TestSessionWithoutToken(t *testing.T) {
	sess, err := New(NewTokenStore(filepath.Join(t.TempDir(), "token")))
	require.NoError(t, err)

	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token())
	assert.Empty(t, sess.UserID())
	assert.Nil(t, sess.User())
}

func TestSessionLoginLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	sess, err := New(NewTokenStore(path))
	require.NoError(t, err)

	require.NoError(t, sess.Login("fresh-token", &models.User{ID: "u1", Name: "Alice"}))
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "u1", sess.UserID())

	// Токен пережил "перезапуск"
	restored, err := New(NewTokenStore(path))
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", restored.Token())

	require.NoError(t, sess.Logout())
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User())

	cleared, err := New(NewTokenStore(path))
	require.NoError(t, err)
	assert.False(t, cleared.IsAuthenticated())
}

func TestUserIDFromToken(t *testing.T) {
	for _, key := range []string{"_id", "user_id", "id"} {
		id, err := UserIDFromToken(signedToken(t, jwt.MapClaims{key: "u42"}))
		require.NoError(t, err)
		assert.Equal(t, "u42", id)
	}
}

func TestUserIDFromTokenErrors(t *testing.T) {
	_, err := UserIDFromToken("not-a-jwt")
	assert.Error(t, err)

	_, err = UserIDFromToken(signedToken(t, jwt.MapClaims{"email": "alice@example.com"}))
	assert.Error(t, err, "токен без ID пользователя")
}
