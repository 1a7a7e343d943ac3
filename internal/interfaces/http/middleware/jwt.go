package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/auth"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/logger"
	"github.com/sudarsanyes/axolotl-kitchen/internal/interfaces/http/dto"
)

// Context keys populated by the JWT middleware.
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTUsernameKey = "jwt_username"
)

// JWTMiddlewareConfig configures the JWT authentication middleware.
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// SkipPaths lists exact request paths that bypass authentication.
	SkipPaths []string
	// SkipPathPrefixes lists path prefixes that bypass authentication.
	SkipPathPrefixes []string
	// SkipReadOnly lets GET, HEAD and OPTIONS requests through without
	// a token. Mutations always require one.
	SkipReadOnly bool
	Logger       *zap.Logger
}

// DefaultJWTConfig returns a JWT middleware configuration that skips
// the health endpoint.
func DefaultJWTConfig(jwtService *auth.JWTService, log *zap.Logger) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService:   jwtService,
		SkipPaths:    []string{"/health"},
		SkipReadOnly: true,
		Logger:       log,
	}
}

// JWTAuthMiddleware returns a JWT authentication middleware with the
// given configuration. Validated claims are stored in the gin context
// and the user ID is attached to the request-scoped logger context.
func JWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if cfg.SkipReadOnly {
			switch c.Request.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				c.Next()
				return
			}
		}

		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			handleAuthError(c, cfg.Logger, err)
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			handleAuthError(c, cfg.Logger, err)
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTUsernameKey, claims.Username)

		reqLogger := logger.FromContext(c.Request.Context())
		ctx, _ := logger.WithUserID(c.Request.Context(), reqLogger, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

var errMissingAuthHeader = errors.New("missing authorization header")

// extractBearerToken extracts the bearer token from the Authorization header
func extractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errMissingAuthHeader
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", auth.ErrInvalidToken
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", auth.ErrInvalidToken
	}
	return token, nil
}

// handleAuthError writes a 401 response for an authentication failure
func handleAuthError(c *gin.Context, log *zap.Logger, err error) {
	message := "authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		message = "token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		message = "token not yet valid"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidClaims):
		message = "invalid token"
	}

	if log != nil {
		log.Debug("authentication failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, message, requestID))
}

// GetJWTClaims retrieves validated JWT claims from the gin context.
func GetJWTClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(JWTClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetJWTUserID retrieves the authenticated user ID from the gin context.
func GetJWTUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(JWTUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
