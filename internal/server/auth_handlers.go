package server

import (
	"errors"
	"strings"
	"time"

	"ripple/internal/models"
	"ripple/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	AvatarEmoji string `json:"avatar_emoji"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Register creates a new account. Uniqueness is pre-checked so clients get
// field-level details, but the DB constraint remains the final arbiter.
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var details []models.FieldError
	if fe := validation.Username(req.Username); fe != nil {
		details = append(details, *fe)
	}
	if fe := validation.Email(req.Email); fe != nil {
		details = append(details, *fe)
	}
	if fe := validation.Password(req.Password); fe != nil {
		details = append(details, *fe)
	}
	if len(details) > 0 {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid registration data", details...))
	}

	ctx := c.UserContext()
	if taken, err := s.userRepo.ExistsByUsername(ctx, req.Username); err != nil {
		return models.RespondWithError(c, err)
	} else if taken {
		details = append(details, models.FieldError{Field: "username", Message: "Username already taken"})
	}
	if taken, err := s.userRepo.ExistsByEmail(ctx, req.Email); err != nil {
		return models.RespondWithError(c, err)
	} else if taken {
		details = append(details, models.FieldError{Field: "email", Message: "Email already registered"})
	}
	if len(details) > 0 {
		return models.RespondWithError(c,
			models.NewValidationError("Account already exists", details...))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = req.Username
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    string(hash),
		DisplayName: displayName,
		AvatarEmoji: strings.TrimSpace(req.AvatarEmoji),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.RespondMessage(c, fiber.StatusCreated, user, "Account created")
}

// Login verifies credentials against the identifier (email or username) and
// establishes the cookie session.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Identifier) == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Identifier and password are required"))
	}

	user, err := s.userRepo.GetByIdentifier(c.UserContext(), req.Identifier)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}

	if err := s.issueSession(c, user); err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return models.RespondMessage(c, fiber.StatusOK, user, "Logged in")
}

func (s *Server) issueSession(c *fiber.Ctx, user *models.User) error {
	accessToken, err := s.generateToken(user.ID, user.Username, "access", accessTokenTTL)
	if err != nil {
		return err
	}
	refreshToken, err := s.generateToken(user.ID, user.Username, "refresh", refreshTokenTTL)
	if err != nil {
		return err
	}
	s.setAuthCookie(c, accessTokenCookie, accessToken, accessTokenTTL)
	s.setAuthCookie(c, refreshTokenCookie, refreshToken, refreshTokenTTL)
	return nil
}

// Refresh rotates the access token from a valid refresh cookie.
func (s *Server) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(refreshTokenCookie)
	if refreshToken == "" {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Refresh token required"))
	}

	userID, _, appErr := s.parseToken(c, refreshToken, "refresh")
	if appErr != nil {
		return models.RespondWithError(c, appErr)
	}

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		// Only a missing user invalidates the session; repository failures
		// surface as-is so an outage does not read as a revoked token.
		var ae *models.AppError
		if errors.As(err, &ae) && ae.Code == models.CodeNotFound {
			return models.RespondWithError(c, models.NewUserNotFoundError())
		}
		return models.RespondWithError(c, err)
	}

	accessToken, err := s.generateToken(user.ID, user.Username, "access", accessTokenTTL)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	s.setAuthCookie(c, accessTokenCookie, accessToken, accessTokenTTL)

	return models.RespondMessage(c, fiber.StatusOK, nil, "Token refreshed")
}

// Logout revokes the presented access token (if any) and clears both cookies.
func (s *Server) Logout(c *fiber.Ctx) error {
	if tokenString := tokenFromRequest(c); tokenString != "" && s.redis != nil {
		if _, claims, appErr := s.parseToken(c, tokenString, "access"); appErr == nil {
			if jti, ok := claims["jti"].(string); ok && jti != "" {
				ttl := accessTokenTTL
				if exp, ok := claims["exp"].(float64); ok {
					if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
						ttl = remaining
					}
				}
				s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl)
			}
		}
	}

	s.clearAuthCookie(c, accessTokenCookie)
	s.clearAuthCookie(c, refreshTokenCookie)

	return models.RespondMessage(c, fiber.StatusOK, nil, "Logged out")
}

// Me returns the authenticated user.
func (s *Server) Me(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return models.RespondWithError(c, models.NewUnauthorizedError("Authentication required"))
	}
	return models.Respond(c, fiber.StatusOK, user)
}
