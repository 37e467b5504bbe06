// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/money-guard/internal/aggregate"
	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/internal/middleware"
	"github.com/go-petr/money-guard/internal/transactionservice"
	"github.com/go-petr/money-guard/pkg/errorspkg"
	"github.com/go-petr/money-guard/pkg/tokenpkg"
	"github.com/go-petr/money-guard/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, owner string, arg transactionservice.CreateParams) (domain.Transaction, error)
	List(ctx context.Context, owner string) ([]domain.Transaction, error)
	Update(ctx context.Context, owner string, id uuid.UUID, arg transactionservice.CreateParams) (domain.Transaction, error)
	Delete(ctx context.Context, owner string, id uuid.UUID) error
	Years(ctx context.Context, owner string) ([]string, error)
	Summary(ctx context.Context, owner, year string, month int) (aggregate.Summary, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func badRequest(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

func internalError(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

func owner(gctx *gin.Context) string {
	return gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload).Username
}

type createRequest struct {
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Type            string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category        string          `json:"category" binding:"required"`
	Comment         string          `json:"comment" binding:"max=255"`
	Amount          decimal.Decimal `json:"amount"`
}

type transactionData struct {
	Transaction domain.Transaction `json:"transaction"`
}

// Create handles http request to create a transaction.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	tx, err := h.service.Create(ctx, owner(gctx), transactionservice.CreateParams{
		TransactionDate: req.TransactionDate,
		Type:            req.Type,
		Category:        req.Category,
		Comment:         req.Comment,
		Amount:          req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, transactionservice.ErrInvalidDate),
			errors.Is(err, transactionservice.ErrInvalidAmount),
			errors.Is(err, domain.ErrUnknownCategory):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		case errors.Is(err, domain.ErrUserNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		default:
			internalError(gctx, err)
		}

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: transactionData{tx}})
}

type transactionsData struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// List handles http request to list all transactions of the user.
func (h *Handler) List(gctx *gin.Context) {
	txs, err := h.service.List(gctx.Request.Context(), owner(gctx))
	if err != nil {
		internalError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionsData{txs}})
}

type idRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// transactionID binds the id path parameter and writes 400 if it is not a UUID.
func transactionID(gctx *gin.Context) (uuid.UUID, bool) {
	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		badRequest(gctx, err)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		badRequest(gctx, err)
		return uuid.Nil, false
	}

	return id, true
}

// Update handles http request to edit a transaction of the user.
func (h *Handler) Update(gctx *gin.Context) {
	id, ok := transactionID(gctx)
	if !ok {
		return
	}

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	tx, err := h.service.Update(gctx.Request.Context(), owner(gctx), id, transactionservice.CreateParams{
		TransactionDate: req.TransactionDate,
		Type:            req.Type,
		Category:        req.Category,
		Comment:         req.Comment,
		Amount:          req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, transactionservice.ErrInvalidDate),
			errors.Is(err, transactionservice.ErrInvalidAmount),
			errors.Is(err, domain.ErrUnknownCategory):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		case errors.Is(err, domain.ErrTransactionNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		default:
			internalError(gctx, err)
		}

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionData{tx}})
}

// Delete handles http request to delete a transaction of the user.
func (h *Handler) Delete(gctx *gin.Context) {
	id, ok := transactionID(gctx)
	if !ok {
		return
	}

	if err := h.service.Delete(gctx.Request.Context(), owner(gctx), id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		internalError(gctx, err)

		return
	}

	gctx.Status(http.StatusNoContent)
}

// Categories handles http request to list the transaction categories.
func (h *Handler) Categories(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{
		Data: struct {
			Categories []string `json:"categories"`
		}{
			Categories: domain.Categories,
		},
	})
}

// Years handles http request to list the years the user has transactions in.
func (h *Handler) Years(gctx *gin.Context) {
	years, err := h.service.Years(gctx.Request.Context(), owner(gctx))
	if err != nil {
		internalError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: struct {
			Years  []string          `json:"years"`
			Months []aggregate.Month `json:"months"`
		}{
			Years:  years,
			Months: aggregate.Months,
		},
	})
}

type summaryRequest struct {
	Year  string `form:"year" binding:"required,len=4,numeric"`
	Month int    `form:"month" binding:"min=0,max=12"`
}

// Summary handles http request for the statistics of a year or a month.
func (h *Handler) Summary(gctx *gin.Context) {
	var req summaryRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	summary, err := h.service.Summary(gctx.Request.Context(), owner(gctx), req.Year, req.Month)
	if err != nil {
		if errors.Is(err, transactionservice.ErrInvalidMonth) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		internalError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: struct {
			Summary aggregate.Summary `json:"summary"`
		}{
			Summary: summary,
		},
	})
}
