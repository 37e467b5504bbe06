// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/internal/notifier"
	"github.com/go-petr/money-guard/internal/registration"
	"github.com/go-petr/money-guard/pkg/errorspkg"
	"github.com/go-petr/money-guard/pkg/tokenpkg"
	"github.com/go-petr/money-guard/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Register(ctx context.Context, arg domain.RegisterParams) (domain.UserWihtoutPassword, error)
	CheckPassword(ctx context.Context, email, password string) (domain.UserWihtoutPassword, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service       Service
	tokenMaker    tokenpkg.Maker
	sink          notifier.Sink
	tokenDuration time.Duration
}

// NewHandler returns user handler.
func NewHandler(us Service, tm tokenpkg.Maker, sink notifier.Sink, tokenDuration time.Duration) *Handler {
	return &Handler{
		service:       us,
		tokenMaker:    tm,
		sink:          sink,
		tokenDuration: tokenDuration,
	}
}

type validateQuery struct {
	Variant string `form:"variant" binding:"omitempty,oneof=compact wide"`
}

type validateData struct {
	Errors         registration.Errors   `json:"errors"`
	SubmitDisabled bool                  `json:"submit_disabled"`
	Strength       registration.Strength `json:"strength"`
	Layout         []registration.Field  `json:"layout"`
}

// Validate handles live validation of the registration form. It never registers.
func (h *Handler) Validate(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var query validateQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, bindError(err))

		return
	}

	variant := registration.VariantWide
	if query.Variant != "" {
		variant = registration.Variant(query.Variant)
	}

	layout, err := registration.Layout(variant)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	var values registration.Values
	if err := gctx.ShouldBindJSON(&values); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, bindError(err))

		return
	}

	form := registration.NewController(h.service, h.sink)

	errs, err := form.Fill(values)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: validateData{
			Errors:         errs,
			SubmitDisabled: form.SubmitDisabled(),
			Strength:       form.Strength(),
			Layout:         layout,
		},
	})
}

type notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type userData struct {
	User         domain.UserWihtoutPassword `json:"user"`
	Notification *notification              `json:"notification,omitempty"`
}

// Create handles http request to register a user through the registration form.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var values registration.Values
	if err := gctx.ShouldBindJSON(&values); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, bindError(err))

		return
	}

	rec := &notifier.Recorder{}
	form := registration.NewController(h.service, notifier.Multi{h.sink, rec})

	if _, err := form.Fill(values); err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	out, err := form.Submit(ctx)
	if err != nil {
		if errors.Is(err, registration.ErrInvalidForm) {
			gctx.JSON(http.StatusBadRequest, web.Response{
				Error: err.Error(),
				Data: struct {
					Errors registration.Errors `json:"errors"`
				}{
					Errors: out.Errors,
				},
			})

			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if out.State == registration.Failed {
		status := http.StatusInternalServerError
		if errors.Is(out.Err, domain.ErrUsernameAlreadyExists) || errors.Is(out.Err, domain.ErrEmailALreadyExists) {
			status = http.StatusConflict
		}

		gctx.JSON(status, web.Response{Error: out.Message})

		return
	}

	h.respondWithToken(gctx, userData{
		User:         out.User,
		Notification: &notification{Level: rec.Level, Message: rec.Message},
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles http login request and returns user with an access token.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, bindError(err))

		return
	}

	user, err := h.service.CheckPassword(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.Is(err, domain.ErrWrongPassword):
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
		default:
			l.Error().Err(err).Send()
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	h.respondWithToken(gctx, userData{User: user})
}

func (h *Handler) respondWithToken(gctx *gin.Context, data userData) {
	accessToken, payload, err := h.tokenMaker.CreateToken(data.User.Username, h.tokenDuration)
	if err != nil {
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: &payload.ExpiredAt,
		Data:                 data,
	})
}

func bindError(err error) web.Response {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return web.Response{Error: web.GetErrorMsg(ve)}
	}

	return web.Response{Error: err.Error()}
}
