package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	m "fundtracker/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// sendRequest drives the app in-process and decodes the JSON body into resp.
// An optional bearer token goes on the Authorization header.
func sendRequest(app *fiber.App, path string, method string, token string, body any, resp any) (int, error) {

	var rb io.Reader
	if body != nil {
		bodyByte, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("error request body marshaling \n%w", err)
		}
		rb = bytes.NewBuffer(bodyByte)
	}

	req, err := http.NewRequest(method, path, rb)
	if err != nil {
		return 0, fmt.Errorf("error making request\n%w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	if err != nil {
		return 0, fmt.Errorf("error sending request\n%w", err)
	}
	defer res.Body.Close()

	if resp != nil {
		if err := json.NewDecoder(res.Body).Decode(resp); err != nil {
			return res.StatusCode, fmt.Errorf("error response body decoding \n%w", err)
		}
	}
	return res.StatusCode, nil
}

// seedAccount registers a user with the given role directly in the mock and
// returns a signed token for it.
func seedAccount(t *testing.T, stg *StorageMock, auth *AuthHandler, email string, role m.Role) (*m.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	user := &m.User{ID: uuid.NewString(), Email: email, Password: string(hash)}
	stg.users = append(stg.users, *user)
	stg.profiles = append(stg.profiles, m.Profile{ID: uuid.NewString(), UserID: user.ID, FullName: "Usuário Teste"})
	stg.roles = append(stg.roles, m.UserRole{ID: uuid.NewString(), UserID: user.ID, Role: role})

	token, _, err := auth.generateToken(user)
	if err != nil {
		t.Fatal(err)
	}
	return user, token
}
