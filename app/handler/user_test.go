package handler

import (
	"testing"

	"fundtracker/app/middleware"
	m "fundtracker/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestUserHandler(t *testing.T) {

	app := fiber.New()
	middleware.SetupMiddleware(app)

	stg := &StorageMock{}
	tb := &TokenBlockerMock{}
	auth := NewAuthHandler(stg, stg, tb, "test-key")
	u := NewUserHandler(stg, stg, auth)
	u.InitRoute(app)

	_, managerToken := seedAccount(t, stg, auth, "gerente@fundtracker.com", m.RoleManager)
	analyst, analystToken := seedAccount(t, stg, auth, "analista@fundtracker.com", m.RoleAnalyst)

	t.Run("listagem de usuários", func(t *testing.T) {

		t.Run("sem token", func(t *testing.T) {
			status, err := sendRequest(app, "/users", "GET", "", nil, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, status)
		})

		t.Run("analista recebe 403", func(t *testing.T) {
			status, err := sendRequest(app, "/users", "GET", analystToken, nil, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, status)
		})

		t.Run("gerente vê papéis, emails e nomes", func(t *testing.T) {
			var resp []userWithRoleResponse
			status, err := sendRequest(app, "/users", "GET", managerToken, nil, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Len(t, resp, 2)

			byEmail := make(map[string]userWithRoleResponse)
			for _, r := range resp {
				byEmail[r.Email] = r
			}
			assert.Equal(t, "gerente", byEmail["gerente@fundtracker.com"].Role)
			assert.Equal(t, "analista", byEmail["analista@fundtracker.com"].Role)
			assert.Equal(t, "Usuário Teste", byEmail["analista@fundtracker.com"].FullName)
			assert.NotEmpty(t, byEmail["analista@fundtracker.com"].RoleID)
		})
	})

	t.Run("alteração de papel", func(t *testing.T) {

		roleID := ""
		for _, r := range stg.roles {
			if r.UserID == analyst.ID {
				roleID = r.ID
			}
		}

		t.Run("analista recebe 403", func(t *testing.T) {
			param := UpdateRoleReq{Role: "gerente"}
			status, err := sendRequest(app, "/users/roles/"+roleID, "PATCH", analystToken, param, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, status)
		})

		t.Run("papel fora da lista", func(t *testing.T) {
			param := UpdateRoleReq{Role: "admin"}
			status, err := sendRequest(app, "/users/roles/"+roleID, "PATCH", managerToken, param, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})

		t.Run("gerente promove analista", func(t *testing.T) {
			param := UpdateRoleReq{Role: "gerente"}
			var resp Notice
			status, err := sendRequest(app, "/users/roles/"+roleID, "PATCH", managerToken, param, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, "Papel atualizado com sucesso", resp.Title)

			role, err := stg.RetrieveUserRole(analyst.ID)
			assert.NoError(t, err)
			assert.Equal(t, m.RoleManager, role.Role)
		})

		t.Run("papel inexistente", func(t *testing.T) {
			param := UpdateRoleReq{Role: "analista"}
			status, err := sendRequest(app, "/users/roles/nao-existe", "PATCH", managerToken, param, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusNotFound, status)
		})
	})
}
