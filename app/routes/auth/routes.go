package auth

import (
	"strings"

	"swaram-cms/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/me", MeAPI)
	auth.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets the user context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Cookie first, Authorization header as fallback
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:       claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		IsActive: true,
	}
	if claims.Role != "" {
		user.Role = &models.Role{Name: claims.Role}
	}

	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware restricts a route group to the named roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok || user.Role == nil {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}
		for _, allowed := range allowedRoles {
			if user.Role.Name == allowed {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
