package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
)

// Locals key para el nombre del cliente autenticado en Fiber.
const LocalClientName = "client_name"

// APITokenMiddleware valida el token opaco del header Authorization (Bearer <token>)
// contra los tokens activos y registra su uso. Deja el nombre del cliente en c.Locals.
func APITokenMiddleware(tokenUC *auth.TokenUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.FailureResponse{
				Success: false, Error: "Missing token", Message: "Authorization header is required",
			})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.FailureResponse{
				Success: false, Error: "Invalid token", Message: "expected format: Bearer <token>",
			})
		}
		token := strings.TrimSpace(parts[1])
		record, err := tokenUC.Validate(c.Context(), token)
		if err != nil || record == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.FailureResponse{
				Success: false, Error: "Invalid token", Message: "token unknown or inactive",
			})
		}
		c.Locals(LocalClientName, record.Name)
		return c.Next()
	}
}

// GetClientName devuelve el nombre del cliente autenticado (después del middleware de token).
func GetClientName(c *fiber.Ctx) string {
	v := c.Locals(LocalClientName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
