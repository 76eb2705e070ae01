package handler

import (
	"net/http"

	"cardportal/internal/delivery/api/response"
	"cardportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
}

// CardHandler serves public card verification.
type CardHandler struct {
	cardUC usecase.CardUsecase
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{cardUC: params.CardUC}
}

// Verify handles GET /cards/:number/verify. It needs no authentication.
func (h *CardHandler) Verify(c echo.Context) error {
	verification, err := h.cardUC.Verify(c.Request().Context(), c.Param("number"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCardVerificationResponse(verification))
}
