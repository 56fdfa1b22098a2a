package main

import (
	"fundtracker/app"
	"fundtracker/config"
	"fundtracker/internal/db"

	"github.com/rs/zerolog"
)

func main() {

	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	level, err := conf.LogLevel()
	if err != nil {
		panic(err)
	}
	zerolog.SetGlobalLevel(level)

	stg, err := db.NewStorage(conf.MysqlConfig(), conf.RedisConfig())
	if err != nil {
		panic(err)
	}

	if err := app.Run(conf.App.Port, conf.App.JwtKey, stg); err != nil {
		panic(err)
	}
}
