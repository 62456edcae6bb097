package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aurabank/aura-api/internal/cqrs"
	"github.com/aurabank/aura-api/internal/middleware"
	"github.com/aurabank/aura-api/internal/models"
	"github.com/aurabank/aura-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	Transfer(context.Context, cqrs.TransferCommand) (models.TransferResult, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	Authenticate(cqrs.LoginQuery) models.CredentialsResult
	ListAccounts(cqrs.ListAccountsQuery) []models.Account
}

// AccountHandler serves login, account listing and transfers.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

// LoginRequest has no required fields: empty or absent credentials are a
// failed login, not a bad request.
type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type AccountsRequest struct {
	ID string `uri:"id" validate:"required"`
}

// TransferRequest leaves id resolution to the service so that an empty id is
// reported the same way as any other unknown user.
type TransferRequest struct {
	SenderID    string           `json:"senderId"`
	RecipientID string           `json:"recipientId"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.queries.Authenticate(cqrs.LoginQuery{
		ID:       req.ID,
		Password: req.Password,
	})
	c.JSON(http.StatusOK, result)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	var req AccountsRequest
	if err := c.ShouldBindUri(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid path parameter")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		h.MissingAccountID(c)
		return
	}

	accounts := h.queries.ListAccounts(cqrs.ListAccountsQuery{UserID: req.ID})
	c.JSON(http.StatusOK, accounts)
}

// MissingAccountID answers /accounts requests that carry no user id.
func (h *AccountHandler) MissingAccountID(c *gin.Context) {
	middleware.RespondWithError(c, http.StatusBadRequest, "Missing id path param")
}

func (h *AccountHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	result, err := h.commands.Transfer(c.Request.Context(), cqrs.TransferCommand{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Amount:      *req.Amount,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to transfer funds")
		return
	}

	c.JSON(http.StatusOK, result)
}
