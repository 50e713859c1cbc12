package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
	}
}

// createTransaction godoc
// @Summary Record a deposit, withdrawal or transfer
// @Description Only targetAccountId: deposit. Only sourceAccountId: withdrawal. Both: transfer.
// @Description Id and time are assigned by the ledger.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Header  201 {string} Location "/transactions/{id}"
// @Failure 400 {object} map[string]string "Invalid input, non-positive amount or self transfer"
// @Failure 422 {object} map[string]string "Unknown account or insufficient balance"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	var (
		txn *domain.Transaction
		err error
	)
	switch {
	case req.SourceAccountID == nil && req.TargetAccountID == nil:
		err = apperrors.ErrSelfTransfer
	case req.SourceAccountID == nil:
		txn, err = h.transactionService.Deposit(ctx, *req.TargetAccountID, req.Amount)
	case req.TargetAccountID == nil:
		txn, err = h.transactionService.Withdraw(ctx, *req.SourceAccountID, req.Amount)
	default:
		txn, err = h.transactionService.Transfer(ctx, *req.SourceAccountID, *req.TargetAccountID, req.Amount)
	}
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAccountNotFound), errors.Is(err, apperrors.ErrOverdraft):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/transactions/%d", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	txn, err := h.transactionService.LookupTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
