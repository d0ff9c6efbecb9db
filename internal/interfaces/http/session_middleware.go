package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Locals keys para UserID y SessionID en Fiber.
const (
	LocalUserID    = "user_id"
	LocalSessionID = "session_id"
)

// SessionMiddleware resuelve la cookie opaca contra la tabla de sesiones y deja
// UserID y SessionID en c.Locals. Cookie ausente, token desconocido y sesión
// expirada responden todos 401.
func SessionMiddleware(sessions repository.SessionRepository, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		session, err := sessions.GetByID(token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida"})
		}
		if session.Expired(time.Now()) {
			// La fila vencida la recoge el janitor; aquí solo se rechaza.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión expirada"})
		}
		c.Locals(LocalUserID, session.UserID)
		c.Locals(LocalSessionID, session.ID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de sesión).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetSessionID devuelve el token de sesión del contexto.
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
