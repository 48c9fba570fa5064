package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const currentAdminKey = "currentAdmin"

// AdminSubject is the token subject issued to the content editor.
const AdminSubject = "admin"

// is returned when the admin password doesn't match.
var ErrInvalidCredentials = errors.New("invalid password")

// Admin is the authenticated caller of the admin API.
type Admin struct {
	Subject string
}

// uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// retrieves *Admin from Gin context (after JWTMiddleware has run).
func GetCurrentAdmin(c *gin.Context) (*Admin, bool) {
	a, exists := c.Get(currentAdminKey)
	if !exists {
		return nil, false
	}
	admin, ok := a.(*Admin)
	return admin, ok
}
