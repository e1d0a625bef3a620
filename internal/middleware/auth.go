package middleware

import (
	"net/http"
	"strings"

	"github.com/ekremtasci/testportal/config"
	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// RequireAuth validates the bearer token and stores the caller's id and role
// in the gin context. Token issuance is handled elsewhere; this only verifies
// HS256 tokens with "sub" and "role" claims.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access token is required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired access token"})
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid access token subject"})
			return
		}
		role, _ := claims["role"].(string)

		ctx.Set(ContextUserID, userID)
		ctx.Set(ContextUserRole, role)
		ctx.Next()
	}
}

// RequireStaff rejects callers whose token role is neither ADMIN nor TEACHER.
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString(ContextUserRole)
		if role != model.RoleAdmin && role != model.RoleTeacher {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Staff access required"})
			return
		}
		ctx.Next()
	}
}

// UserID returns the authenticated caller's id from the gin context.
func UserID(ctx *gin.Context) uuid.UUID {
	id, _ := ctx.MustGet(ContextUserID).(uuid.UUID)
	return id
}
