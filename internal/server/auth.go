package server

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"ripple/internal/middleware"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"

	tokenIssuer   = "ripple-api"
	tokenAudience = "ripple-client"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// tokenFromRequest prefers the session cookie and falls back to a Bearer
// header for non-browser clients.
func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(accessTokenCookie); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return ""
}

// parseToken validates the signature and standard claims of a token and
// enforces the expected token_type claim ("access" or "refresh").
func (s *Server) parseToken(c *fiber.Ctx, tokenString, wantType string) (uint, jwt.MapClaims, *models.AppError) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, nil, models.NewInvalidTokenError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, nil, models.NewInvalidTokenError("Invalid token claims")
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
		return 0, nil, models.NewInvalidTokenError("Invalid token issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
		return 0, nil, models.NewInvalidTokenError("Invalid token audience")
	}
	if tokenType, typeOk := claims["token_type"].(string); !typeOk || tokenType != wantType {
		return 0, nil, models.NewInvalidTokenError("Invalid token type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, nil, models.NewInvalidTokenError("Invalid subject claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, nil, models.NewInvalidTokenError("Invalid user ID in token")
	}

	// Check JTI for revocation
	if jti, exists := claims["jti"].(string); exists && jti != "" && s.redis != nil {
		isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
		if err == nil && isBlacklisted > 0 {
			return 0, nil, models.NewInvalidTokenError("Token has been revoked")
		}
	}

	return uint(userID), claims, nil
}

// AuthRequired returns the authentication middleware. The failure ladder is
// UNAUTHORIZED (no token), INVALID_TOKEN (bad token), USER_NOT_FOUND (valid
// token for a user that no longer exists).
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Authentication required"))
		}

		userID, _, appErr := s.parseToken(c, tokenString, "access")
		if appErr != nil {
			return models.RespondWithError(c, appErr)
		}

		user, err := s.userRepo.GetByID(c.UserContext(), userID)
		if err != nil {
			var ae *models.AppError
			if errors.As(err, &ae) && ae.Code == models.CodeNotFound {
				return models.RespondWithError(c, models.NewUserNotFoundError())
			}
			return models.RespondWithError(c, err)
		}

		// Store the authenticated user in context
		c.Locals("userID", user.ID)
		c.Locals("user", user)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and proceeds
// anonymously otherwise. Used by public listings to personalize the
// liked/reposted flags.
func (s *Server) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Next()
		}

		userID, _, appErr := s.parseToken(c, tokenString, "access")
		if appErr != nil {
			return c.Next()
		}
		if _, err := s.userRepo.GetByID(c.UserContext(), userID); err != nil {
			return c.Next()
		}

		c.Locals("userID", userID)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// generateToken mints an HS256 JWT for the user with the given type and TTL.
func (s *Server) generateToken(userID uint, username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        strconv.FormatUint(uint64(userID), 10),
		"username":   username,
		"token_type": tokenType,
		"iss":        tokenIssuer,
		"aud":        tokenAudience,
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		"jti":        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// setAuthCookie writes an http-only session cookie at path "/". Secure is
// only set in production so local development over http keeps working.
func (s *Server) setAuthCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (s *Server) clearAuthCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
