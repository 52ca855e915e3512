package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"go-jobtracker/internal/shared/contextutil"
	"go-jobtracker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Gin context keys populated by the auth middlewares.
const (
	KeyUID      = "uid"
	KeyEmail    = "email"
	KeyDeviceID = "device_id"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		tokenString = ""
	}

	if tokenString == "" {
		if cookie, err := c.Cookie("access_token"); err == nil {
			tokenString = cookie
		}
	}

	return tokenString
}

func parseIdentity(tokenString string) (uid, email string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid identity token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}

	uid, _ = claims["uid"].(string)
	if uid == "" {
		// some identity providers put the uid in the subject claim
		uid, _ = claims["sub"].(string)
	}
	if uid == "" {
		return "", "", fmt.Errorf("uid not found in token")
	}

	email, _ = claims["email"].(string)
	return uid, email, nil
}

// AuthMiddleware requires a valid identity-provider token and rejects the
// request otherwise.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		uid, email, err := parseIdentity(tokenString)
		if err != nil {
			code := "INVALID_TOKEN"
			if strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
			}
			response.Error(c, http.StatusUnauthorized, code, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		setIdentity(c, uid, email)
		c.Next()
	}
}

// OptionalAuthMiddleware parses the identity token when one is present but
// lets unauthenticated requests through with an empty uid. Session resolution
// needs this: the absence of a principal is an input (it routes to LOGIN),
// not a transport error.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString != "" {
			if uid, email, err := parseIdentity(tokenString); err == nil {
				setIdentity(c, uid, email)
			}
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, uid, email string) {
	c.Set(KeyUID, uid)
	c.Set(KeyEmail, email)

	deviceID := c.GetHeader("X-Device-ID")
	if deviceID == "" {
		deviceID = uid
	}
	c.Set(KeyDeviceID, deviceID)

	ctx := c.Request.Context()
	ctx = contextutil.WithUserID(ctx, uid)
	ctx = contextutil.WithDeviceID(ctx, deviceID)
	c.Request = c.Request.WithContext(ctx)
}
