package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest describes a deposit (target only), a withdrawal
// (source only) or a transfer (both). Amount accepts a JSON number or string.
type CreateTransactionRequest struct {
	SourceAccountID *int            `json:"sourceAccountId" example:"0"`
	TargetAccountID *int            `json:"targetAccountId" example:"1"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"75.50"`
}

// TransactionResponse defines the data returned for a transaction.
// Absent account ids serialize as null.
type TransactionResponse struct {
	TransactionID   int       `json:"transactionId"`
	TransactionTime time.Time `json:"transactionTime"`
	SourceAccountID *int      `json:"sourceAccountId"`
	TargetAccountID *int      `json:"targetAccountId"`
	Amount          Money     `json:"amount" swaggertype:"string"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	c := txn.Clone()
	return TransactionResponse{
		TransactionID:   c.TransactionID,
		TransactionTime: c.TransactionTime,
		SourceAccountID: c.SourceAccountID,
		TargetAccountID: c.TargetAccountID,
		Amount:          NewMoney(c.Amount),
	}
}

// ToListTransactionResponse converts domain transactions to response DTOs
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for an account's history.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps one page of an account's history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"` // Absent on the last page
}
