package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/loja/backend/internal/infrastructure/auth"
	"github.com/loja/backend/internal/infrastructure/logger"
	"github.com/loja/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Authorization header parts
const (
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// TokenVerifier validates a bearer token and returns its email claim
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// TokenCheckRecorder counts verification outcomes. reason is empty on success.
type TokenCheckRecorder interface {
	RecordTokenCheck(ctx context.Context, reason string)
}

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// Verifier is required for token validation
	Verifier TokenVerifier
	// Recorder is optional
	Recorder TokenCheckRecorder
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	Logger    *zap.Logger
}

// authFailure is the response and metric label for one rejection cause
type authFailure struct {
	code    string
	message string
	reason  string
}

var (
	failureMissing = authFailure{dto.ErrCodeTokenMissing, "Authorization token not provided", "missing"}
	failureFormat  = authFailure{dto.ErrCodeTokenMalformed, "Authorization header must use the Bearer scheme", "malformed"}
)

// JWTAuth creates JWT authentication middleware
func JWTAuth(verifier TokenVerifier) gin.HandlerFunc {
	return JWTAuthWithConfig(JWTMiddlewareConfig{Verifier: verifier})
}

// JWTAuthWithConfig creates JWT authentication middleware with custom config.
// The verified email is stored under logger.GinUserEmailKey and in the
// request context.
func JWTAuthWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			rejectToken(c, cfg, failureMissing, auth.ErrMissingToken)
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			rejectToken(c, cfg, failureFormat, auth.ErrMalformedToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		if tokenString == "" {
			rejectToken(c, cfg, failureMissing, auth.ErrMissingToken)
			return
		}

		email, err := cfg.Verifier.VerifyToken(tokenString)
		if err != nil {
			rejectToken(c, cfg, classifyTokenError(err), err)
			return
		}

		c.Set(logger.GinUserEmailKey, email)
		ctx := c.Request.Context()
		ctx, _ = logger.WithUserEmail(ctx, logger.FromContext(ctx), email)
		c.Request = c.Request.WithContext(ctx)

		if cfg.Recorder != nil {
			cfg.Recorder.RecordTokenCheck(ctx, "")
		}
		c.Next()
	}
}

func classifyTokenError(err error) authFailure {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return failureMissing
	case errors.Is(err, auth.ErrExpiredToken):
		return authFailure{dto.ErrCodeTokenExpired, "Token has expired", "expired"}
	case errors.Is(err, auth.ErrInvalidSignature):
		return authFailure{dto.ErrCodeTokenInvalidSignature, "Token signature is invalid", "invalid_signature"}
	default:
		return authFailure{dto.ErrCodeTokenMalformed, "Token is malformed", "malformed"}
	}
}

func rejectToken(c *gin.Context, cfg JWTMiddlewareConfig, f authFailure, err error) {
	if cfg.Recorder != nil {
		cfg.Recorder.RecordTokenCheck(c.Request.Context(), f.reason)
	}
	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("code", f.code),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
		)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(f.code, f.message, GetRequestID(c)))
}

// GetUserEmail returns the email set by JWTAuth, or "" on unauthenticated routes
func GetUserEmail(c *gin.Context) string {
	return c.GetString(logger.GinUserEmailKey)
}
