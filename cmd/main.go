// Package main runs the MoneyGuard API to register users, track transactions and
// serve currency quotes.
package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/money-guard/cmd/httpserver"
	"github.com/go-petr/money-guard/internal/middleware"
	"github.com/go-petr/money-guard/internal/notifier"
	"github.com/go-petr/money-guard/pkg/configpkg"
	"github.com/go-petr/money-guard/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file, using environment")
	}

	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	if config.MigrateOnStart {
		if err := dbpkg.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("cannot migrate database")
		}

		logger.Info().Msg("database migrated")
	}

	sink := notifier.Multi{notifier.Log{}}

	if config.AMQPURL != "" {
		amqpConn, err := notifier.Dial(config.AMQPURL, config.AMQPExchange)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot connect to broker")
		}
		defer amqpConn.Close()

		sink = append(sink, notifier.NewBroker(amqpConn.Channel(), config.AMQPExchange))
	}

	server, err := httpserver.New(db, logger, config, sink)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("MONEY GUARD API SERVER HAS STARTED")

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Error().Err(err).Msg("cannot start server")
	}
}
