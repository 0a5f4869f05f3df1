// Package account defines account and transaction vocabulary shared by the
// persistence layer and the services.
package account

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Type is the product type of an account.
type Type string

const (
	TypeChecking Type = "checking"
	TypeSavings  Type = "savings"
)

// Status is the operational status of an account.
type Status string

const (
	StatusActive Status = "active"
	StatusFrozen Status = "frozen"
	StatusClosed Status = "closed"
)

// Direction is the side of a ledger transaction.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// TransactionType classifies a transaction for reporting.
type TransactionType string

const (
	TransactionTransfer TransactionType = "transfer"
	TransactionPayment  TransactionType = "payment"
	TransactionFee      TransactionType = "fee"
	TransactionDeposit  TransactionType = "deposit"
)

// TransactionStatusPosted is the default status of a transaction row.
const TransactionStatusPosted = "posted"

// DefaultCurrency is used for every account in scope.
const DefaultCurrency = "USD"

// NewAccountNumber returns a random 12 digit account number.
func NewAccountNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%012d", n.Int64()), nil
}
