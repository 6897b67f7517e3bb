// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"hostelku_backend/internals/configs"
	userModel "hostelku_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

// GenerateAccessToken membuat JWT HMAC dengan claims yang dibaca middleware:
// id, role, dan tenant_id (khusus akun penghuni yang sudah terhubung).
func GenerateAccessToken(user *userModel.UserModel, tenantID *uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	if tenantID != nil {
		claims["tenant_id"] = tenantID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
