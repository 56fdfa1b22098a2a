package handler

import (
	"fmt"
	"os"

	m "fundtracker/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// UserHandler is the manager-only user administration surface.
type UserHandler struct {
	ur   UserRetriever
	uw   UserWriter
	auth *AuthHandler
	lg   zerolog.Logger
}

func NewUserHandler(ur UserRetriever, uw UserWriter, auth *AuthHandler) *UserHandler {
	return &UserHandler{
		ur:   ur,
		uw:   uw,
		auth: auth,
		lg:   zerolog.New(os.Stdout).With().Str("Module", "UserHandler").Timestamp().Logger(),
	}
}

func (h *UserHandler) InitRoute(app *fiber.App) {
	router := app.Group("/users")

	router.Get("/", h.auth.RequireAuth, h.auth.RequireManager, h.ListUsers)
	router.Patch("/roles/:id", h.auth.RequireAuth, h.auth.RequireManager, h.UpdateRole)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {

	roles, err := h.ur.RetrieveUserRoles()
	if err != nil {
		return fmt.Errorf("RetrieveUserRoles failed. %w", err)
	}

	profiles, err := h.ur.RetrieveProfiles()
	if err != nil {
		return fmt.Errorf("RetrieveProfiles failed. %w", err)
	}

	users, err := h.ur.RetrieveUsers()
	if err != nil {
		return fmt.Errorf("RetrieveUsers failed. %w", err)
	}

	nameByUser := make(map[string]string, len(profiles))
	for _, p := range profiles {
		nameByUser[p.UserID] = p.FullName
	}
	emailByUser := make(map[string]string, len(users))
	for _, u := range users {
		emailByUser[u.ID] = u.Email
	}

	resp := make([]userWithRoleResponse, len(roles))
	for i, r := range roles {
		resp[i] = userWithRoleResponse{
			UserID:   r.UserID,
			Email:    emailByUser[r.UserID],
			FullName: nameByUser[r.UserID],
			Role:     string(r.Role),
			RoleID:   r.ID,
		}
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {

	id := c.Params("id")

	var req UpdateRoleReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse role body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	if err := h.uw.UpdateUserRole(id, m.Role(req.Role)); err != nil {
		return fmt.Errorf("UpdateUserRole failed. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(Notice{Title: "Papel atualizado com sucesso"})
}
