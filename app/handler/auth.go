package handler

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	m "fundtracker/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	ur      UserRetriever
	uw      UserWriter
	tb      TokenBlocker
	authKey []byte
	lg      zerolog.Logger
}

func NewAuthHandler(ur UserRetriever, uw UserWriter, tb TokenBlocker, authKey string) *AuthHandler {
	return &AuthHandler{
		ur:      ur,
		uw:      uw,
		tb:      tb,
		authKey: []byte(authKey),
		lg:      zerolog.New(os.Stdout).With().Str("Module", "AuthHandler").Timestamp().Logger(),
	}
}

func (h *AuthHandler) InitRoute(app *fiber.App) {
	router := app.Group("/auth")

	router.Post("/signup", h.SignUp)
	router.Post("/signin", h.SignIn)
	router.Post("/signout", h.RequireAuth, h.SignOut)
	router.Get("/me", h.RequireAuth, h.Me)
	router.Patch("/profile", h.RequireAuth, h.UpdateProfile)
}

// Claims represents the JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {

	var req SignUpReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse signup body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	if _, err := h.ur.User(req.Email); err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email já cadastrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user. %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password. %w", err)
	}

	user := &m.User{Email: req.Email, Password: string(hash)}
	if err := h.uw.SaveUser(user); err != nil {
		return fmt.Errorf("failed to save user. %w", err)
	}

	if err := h.uw.SaveProfile(&m.Profile{UserID: user.ID, FullName: req.FullName}); err != nil {
		return fmt.Errorf("failed to save profile. %w", err)
	}

	// every new account starts as analyst; promotion is a manager action
	if err := h.uw.SaveUserRole(&m.UserRole{UserID: user.ID, Role: m.RoleAnalyst}); err != nil {
		return fmt.Errorf("failed to save user role. %w", err)
	}

	h.lg.Info().Str("user_id", user.ID).Msg("User signed up")

	return c.Status(fiber.StatusCreated).JSON(Notice{
		Title:       "Cadastro realizado!",
		Description: "Conta criada com sucesso. Faça login para continuar.",
	})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {

	var req SignInReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse signin body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	user, err := h.ur.User(req.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email ou senha inválidos")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email ou senha inválidos")
	}

	tokenString, expiry, err := h.generateToken(user)
	if err != nil {
		return fmt.Errorf("failed to sign token. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(JWTResponse{
		Token:  tokenString,
		Expiry: expiry,
		Notice: Notice{Title: "Bem-vindo!", Description: "Login realizado com sucesso."},
	})
}

func (h *AuthHandler) generateToken(user *m.User) (string, int64, error) {

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.authKey)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expirationTime.Unix(), nil
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {

	claims := currentClaims(c)
	token, _ := c.Locals("token").(string)

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := h.tb.BlockToken(token, ttl); err != nil {
		return fmt.Errorf("failed to block token. %w", err)
	}

	h.lg.Info().Str("user_id", claims.UserID).Msg("User signed out")

	return c.Status(fiber.StatusOK).JSON(Notice{
		Title:       "Até logo!",
		Description: "Você saiu da sua conta.",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {

	claims := currentClaims(c)

	// profile lookup failures degrade to an empty profile, never an error
	profile, err := h.ur.RetrieveProfile(claims.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		h.lg.Error().Err(err).Str("user_id", claims.UserID).Msg("Profile lookup failed")
		profile = nil
	}

	role := h.resolveRole(claims.UserID)

	return c.Status(fiber.StatusOK).JSON(meResponse{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Profile:   newProfileResponse(profile),
		Role:      string(role),
		CanEdit:   role == m.RoleManager,
		CanDelete: role == m.RoleManager,
		CanCreate: true,
	})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {

	claims := currentClaims(c)

	var req UpdateProfileReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse profile body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	fields := make(map[string]any)
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if len(fields) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	profile, err := h.uw.UpdateProfile(claims.UserID, fields)
	if err != nil {
		return fmt.Errorf("failed to update profile. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(struct {
		Profile *profileResponse `json:"profile"`
		Notice
	}{
		Profile: newProfileResponse(profile),
		Notice:  Notice{Title: "Perfil atualizado", Description: "Suas informações foram salvas."},
	})
}

/***************************************************************** guards ****************************************************************/

// RequireAuth parses and verifies the bearer token, rejecting blocked ones.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Acesso negado. Faça login para continuar.")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return fiber.NewError(fiber.StatusUnauthorized, "Formato de autorização inválido")
	}

	tokenString := tokenParts[1]

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return h.authKey, nil
	})
	if err != nil || !token.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida ou expirada")
	}

	if h.tb.IsTokenBlocked(tokenString) {
		return fiber.NewError(fiber.StatusUnauthorized, "Sessão encerrada. Faça login novamente.")
	}

	c.Locals("claims", claims)
	c.Locals("token", tokenString)
	return c.Next()
}

// RequireManager assumes RequireAuth already ran on the route.
func (h *AuthHandler) RequireManager(c *fiber.Ctx) error {

	claims := currentClaims(c)
	if claims == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Acesso negado. Faça login para continuar.")
	}

	if h.resolveRole(claims.UserID) != m.RoleManager {
		return fiber.NewError(fiber.StatusForbidden, "Apenas gerentes podem acessar esta página.")
	}

	return c.Next()
}

// resolveRole fails closed: any lookup problem reads as "no role".
func (h *AuthHandler) resolveRole(userID string) m.Role {

	role, err := h.ur.RetrieveUserRole(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.lg.Error().Err(err).Str("user_id", userID).Msg("Role lookup failed")
		}
		return ""
	}
	return role.Role
}

func currentClaims(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals("claims").(*Claims)
	return claims
}
