package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/yoockh/workmatch/internal/models"
	"github.com/yoockh/workmatch/internal/utils"
)

// Context keys shared with handlers.
const (
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxIdentity = "identity"
)

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func abort(c *gin.Context, status int, code utils.Code, msg string) {
	c.AbortWithStatusJSON(status, apiError{Code: code, Message: msg})
}

type supabaseClaims struct {
	jwt.RegisteredClaims
	Role         string         `json:"role"`         // "authenticated" / "anon"
	AppMetadata  map[string]any `json:"app_metadata"` // {"role":"client|worker|admin"}
	UserMetadata map[string]any `json:"user_metadata"`
}

// JWTAuth verifies the Supabase HS256 token and resolves the caller's
// Identity once. The app role comes from app_metadata.role; tokens without a
// known role are rejected.
func JWTAuth() gin.HandlerFunc {
	secret := os.Getenv("SUPABASE_JWT_SECRET")
	issuer := os.Getenv("SUPABASE_JWT_ISSUER")     // optional
	audience := os.Getenv("SUPABASE_JWT_AUDIENCE") // optional

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return func(c *gin.Context) {
		if secret == "" {
			abort(c, http.StatusInternalServerError, utils.CodeInternal, "SUPABASE_JWT_SECRET is not set")
			return
		}

		auth := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if !strings.HasPrefix(auth, "Bearer ") || raw == "" {
			abort(c, http.StatusUnauthorized, utils.CodeUnauthorized, "missing bearer token")
			return
		}

		claims := &supabaseClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		}, opts...)
		if err != nil || tok == nil || !tok.Valid {
			abort(c, http.StatusUnauthorized, utils.CodeUnauthorized, "invalid token")
			return
		}

		userID := claims.Subject
		if userID == "" {
			abort(c, http.StatusUnauthorized, utils.CodeUnauthorized, "missing subject")
			return
		}

		roleClaim, _ := claims.AppMetadata["role"].(string)
		role, ok := models.ParseRole(roleClaim)
		if !ok {
			abort(c, http.StatusForbidden, utils.CodeForbidden, "account has no client, worker or admin role")
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, string(role))
		c.Set(CtxIdentity, models.Identity{UserID: userID, Role: role})
		c.Next()
	}
}

