package auth

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/midiiiwo/frozen-haven-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var pinPattern = regexp.MustCompile(`^\d{6}$`)

type AdminLoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	PIN   string `json:"pin" binding:"required"`
}

// AdminLoginHandler verifies the email + six digit PIN and issues a 24h admin
// session token.
// POST /auth/admin/login
func AdminLoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if !pinPattern.MatchString(req.PIN) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "PIN must be 6 digits"})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or PIN"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PINHash), []byte(req.PIN)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or PIN"})
			return
		}

		token, err := IssueAdminToken(jwtSecret, admin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"admin": gin.H{
				"id":    admin.ID,
				"email": admin.Email,
				"name":  admin.Name,
			},
		})
	}
}

// IssueAdminToken signs a 24h HS256 session token for the admin.
func IssueAdminToken(jwtSecret string, admin models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"user_id": admin.ID,
		"email":   admin.Email,
		"role":    "admin",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// CreateAdmin provisions an operator account, hashing the PIN with bcrypt.
func CreateAdmin(db *gorm.DB, email, name, pin string) (*models.Admin, error) {
	if !pinPattern.MatchString(pin) {
		return nil, errors.New("PIN must be 6 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{Email: email, Name: name, PINHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
