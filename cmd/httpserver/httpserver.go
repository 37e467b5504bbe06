// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/money-guard/internal/currencydelivery"
	"github.com/go-petr/money-guard/internal/currencyservice"
	"github.com/go-petr/money-guard/internal/middleware"
	"github.com/go-petr/money-guard/internal/notifier"
	"github.com/go-petr/money-guard/internal/ratesclient"
	"github.com/go-petr/money-guard/internal/transactiondelivery"
	"github.com/go-petr/money-guard/internal/transactionrepo"
	"github.com/go-petr/money-guard/internal/transactionservice"
	"github.com/go-petr/money-guard/internal/userdelivery"
	"github.com/go-petr/money-guard/internal/userrepo"
	"github.com/go-petr/money-guard/internal/userservice"
	"github.com/go-petr/money-guard/pkg/configpkg"
	"github.com/go-petr/money-guard/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB         *sql.DB
	Engine     *gin.Engine
	Config     configpkg.Config
	TokenMaker tokenpkg.Maker
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes. Notifications of the
// registration form go to sink.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config, sink notifier.Sink) (*Server, error) {
	tokenMaker, err := tokenpkg.NewMaker(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userrepo.NewRepoPGS(conn))
	transactionService := transactionservice.New(transactionrepo.NewRepoPGS(conn))

	hc := &http.Client{}
	currencyService := currencyservice.New(
		config.CurrencyCacheTTL,
		config.CurrencyTimeout,
		ratesclient.NewMonobank(config.MonobankURL, hc),
		ratesclient.NewPrivatbank(config.PrivatbankURL, hc),
	)

	userHandler := userdelivery.NewHandler(userService, tokenMaker, sink, config.AccessTokenDuration)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	currencyHandler := currencydelivery.NewHandler(currencyService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/validate", userHandler.Validate)
	engine.POST("/users/login", userHandler.Login)
	engine.GET("/currency", currencyHandler.Get)

	authRoutes := engine.Group("/transactions").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.POST("", transactionHandler.Create)
	authRoutes.GET("", transactionHandler.List)
	authRoutes.PATCH("/:id", transactionHandler.Update)
	authRoutes.DELETE("/:id", transactionHandler.Delete)
	authRoutes.GET("/categories", transactionHandler.Categories)
	authRoutes.GET("/years", transactionHandler.Years)
	authRoutes.GET("/summary", transactionHandler.Summary)

	server := &Server{
		DB:         conn,
		Engine:     engine,
		Config:     config,
		TokenMaker: tokenMaker,
	}

	return server, nil
}
