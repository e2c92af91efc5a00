package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// JwtMiddleware validates the bearer token and exposes user_id and role as locals.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
		}
		userID, _ := claims["user_id"].(string)
		if _, err := uuid.Parse(userID); err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Token missing user_id"))
		}
		role, _ := claims["role"].(string)

		ctx.Locals(LocalUserID, userID)
		ctx.Locals(LocalRole, role)
		return ctx.Next()
	}
}

// RequireRole must run after JwtMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals(LocalRole).(string)
		for _, r := range roles {
			if r == role {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Forbidden"))
	}
}

func CurrentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := ctx.Locals(LocalUserID).(string)
	if !ok {
		return uuid.Nil, NewUnauthorizedError("Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, NewUnauthorizedError("Invalid user ID")
	}
	return userID, nil
}

func CurrentRole(ctx *fiber.Ctx) string {
	role, _ := ctx.Locals(LocalRole).(string)
	return role
}

// ParseUUIDParam reads a path parameter as a UUID or fails with 400.
func ParseUUIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, NewValidationError("invalid " + name)
	}
	return id, nil
}

// SignToken issues an HS256 token carrying the claims JwtMiddleware reads.
// Used by the seeder and tests; interactive login lives outside this service.
func SignToken(secret string, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
