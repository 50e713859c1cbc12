package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
// Id, creation time and balance are assigned by the ledger and are rejected if sent.
type CreateAccountRequest struct {
	Owner string `json:"owner" binding:"required,notblank" example:"John Doe"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID    int       `json:"accountId" example:"0"`
	Owner        string    `json:"owner" example:"John Doe"`
	CreationTime time.Time `json:"creationTime"`
	Balance      Money     `json:"balance" swaggertype:"string" example:"100.00"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		Owner:        acc.Owner,
		CreationTime: acc.CreationTime,
		Balance:      NewMoney(acc.Balance),
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID       int   `json:"accountId"`
	Balance         Money `json:"balance" swaggertype:"string"`
	ReplayedBalance Money `json:"replayedBalance" swaggertype:"string"` // Recomputed from the transaction history
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"` // Accounts opened so far
}
