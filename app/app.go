package app

import (
	"fmt"

	"fundtracker/app/handler"
	"fundtracker/app/middleware"
	"fundtracker/internal/db"

	"github.com/gofiber/fiber/v2"
)

func Run(port int, authKey string, stg *db.Storage) error {

	app := fiber.New()

	middleware.SetupMiddleware(app)

	auth := handler.NewAuthHandler(stg, stg, stg, authKey)
	auth.InitRoute(app)
	handler.NewFundHandler(stg, stg, stg, auth).InitRoute(app)
	handler.NewDetailHandler(stg, stg, auth).InitRoute(app)
	handler.NewUserHandler(stg, stg, auth).InitRoute(app)

	return app.Listen(fmt.Sprintf(":%d", port))
}
