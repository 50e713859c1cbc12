package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/SscSPs/bank_ledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionReaderSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ts portssvc.TransactionReaderSvc) *accountHandler {
	return &accountHandler{
		accountService:     as,
		transactionService: ts,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledger, ledger)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/balance", h.getAccountBalance)
		accounts.GET("/:id/transactions", h.listAccountTransactions)
	}
}

// createAccount godoc
// @Summary Open a new account
// @Description Creates a zero-balance account. Id, creation time and balance are assigned by the ledger.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account owner"
// @Success 201 {object} dto.AccountResponse
// @Header  201 {string} Location "/accounts/{id}"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create account", slog.String("owner", req.Owner))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req.Owner)
	if err != nil {
		logger.Error("Failed to create account in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.Header("Location", fmt.Sprintf("/accounts/%d", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Returns a snapshot of the account
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	account, err := h.accountService.LookupAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found", slog.Int("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Returns account snapshots in id order, with the number of accounts opened so far
// @Tags accounts
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20) minimum(1) maximum(100)
// @Param   offset query int false "Offset for pagination" default(0) minimum(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.ToListAccountResponse(accounts),
		Total:    h.accountService.CountAccounts(c.Request.Context()),
	})
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Returns the live balance together with the balance replayed from the transaction history
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to calculate balance"
// @Router /accounts/{id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	replayed, live, err := h.accountService.CalculateAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to calculate account balance", slog.Int("account_id", accountID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID:       accountID,
		Balance:         dto.NewMoney(live),
		ReplayedBalance: dto.NewMoney(replayed),
	})
}

// listAccountTransactions godoc
// @Summary List an account's transactions
// @Description Returns transactions where the account is source or target, oldest first
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Param   limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /accounts/{id}/transactions [get]
func (h *accountHandler) listAccountTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccountTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	afterID, err := pagination.DecodeCursor(params.NextToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, next, err := h.transactionService.ListAccountTransactions(c.Request.Context(), accountID, params.Limit, afterID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to list account transactions", slog.Int("account_id", accountID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	resp := dto.ListTransactionsResponse{Transactions: dto.ToListTransactionResponse(page)}
	if next != nil {
		token := pagination.EncodeCursor(*next)
		resp.NextToken = &token
	}
	c.JSON(http.StatusOK, resp)
}
