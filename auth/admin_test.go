package auth

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/midiiiwo/frozen-haven-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	return db
}

func TestCreateAdminHashesPIN(t *testing.T) {
	db := openTestDB(t)

	admin, err := CreateAdmin(db, "ops@frozenhaven.example", "Operator", "123456")
	require.NoError(t, err)

	assert.NotEqual(t, "123456", admin.PINHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PINHash), []byte("123456")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(admin.PINHash), []byte("654321")))
}

func TestCreateAdminRejectsBadPIN(t *testing.T) {
	db := openTestDB(t)

	_, err := CreateAdmin(db, "ops@frozenhaven.example", "Operator", "12345")
	assert.Error(t, err)

	_, err = CreateAdmin(db, "ops@frozenhaven.example", "Operator", "abcdef")
	assert.Error(t, err)
}

func TestIssueAdminToken(t *testing.T) {
	admin := models.Admin{ID: "a1", Email: "ops@frozenhaven.example"}

	signed, err := IssueAdminToken("secret", admin)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "a1", claims["user_id"])
	assert.Equal(t, "ops@frozenhaven.example", claims["email"])
}
