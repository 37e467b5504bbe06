// Package currencydelivery manages delivery layer of currency quotes.
package currencydelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/pkg/web"
)

// Service provides service layer interface needed by currency delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package currencydelivery
type Service interface {
	Quotes(ctx context.Context) []domain.Quote
}

// Handler facilitates currency delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns currency handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Get handles http request for the current USD and EUR quotes.
func (h *Handler) Get(gctx *gin.Context) {
	quotes := h.service.Quotes(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{
		Data: struct {
			Quotes []domain.Quote `json:"quotes"`
		}{
			Quotes: quotes,
		},
	})
}
