package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/cantotalk/aacboard-backend/internal/domain"
	"github.com/cantotalk/aacboard-backend/internal/repository"
)

const (
	// ContextUserKey holds the authenticated *domain.User.
	ContextUserKey = "user"
	// ContextUserIDKey holds the authenticated user id.
	ContextUserIDKey = "user_id"
)

type AuthMiddleware struct {
	userRepo repository.UserRepository
	secret   string
	log      *logrus.Logger
}

func NewAuthMiddleware(userRepo repository.UserRepository, secret string, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		userRepo: userRepo,
		secret:   secret,
		log:      log,
	}
}

type tokenClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// RequireAuth rejects requests without a valid Bearer token belonging to an
// active user.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.authenticate(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid token is present
// and lets the request through anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := m.authenticate(c); err == nil {
			c.Set(ContextUserKey, user)
			c.Set(ContextUserIDKey, user.ID)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*domain.User, error) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, fmt.Errorf("invalid token")
	}

	user, err := m.userRepo.GetActiveByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if err != domain.ErrUserNotFound {
			m.log.WithError(err).WithField("user_id", claims.UserID).Error("failed to load user for auth")
		}
		return nil, fmt.Errorf("user lookup failed")
	}
	return user, nil
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// CurrentUserID returns the authenticated user id, or 0 for anonymous
// callers under OptionalAuth.
func CurrentUserID(c *gin.Context) int {
	if id, ok := c.Get(ContextUserIDKey); ok {
		if userID, ok := id.(int); ok {
			return userID
		}
	}
	return 0
}
