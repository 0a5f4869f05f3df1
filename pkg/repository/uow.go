package repository

import (
	"context"
	"reflect"

	"github.com/fortizbank/fortiz/pkg/repository/account"
	"github.com/fortizbank/fortiz/pkg/repository/alert"
	"github.com/fortizbank/fortiz/pkg/repository/kyc"
	"github.com/fortizbank/fortiz/pkg/repository/transaction"
	"github.com/fortizbank/fortiz/pkg/repository/transfer"
	"github.com/fortizbank/fortiz/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Outside Do, repositories are bound to the plain connection and every call
// is its own round trip. Inside Do they share one database transaction.
//
//	repoAny, err := uow.GetRepository(reflect.TypeOf((*account.Repository)(nil)).Elem())
//	repo := repoAny.(account.Repository)
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction/session.
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (account.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	UserRepository() (user.Repository, error)
	TransferRepository() (transfer.Repository, error)
	AlertRepository() (alert.Repository, error)
	KycRepository() (kyc.Repository, error)
}
