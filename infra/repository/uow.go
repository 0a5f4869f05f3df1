package repository

import (
	"context"
	"fmt"
	"reflect"

	accountrepo "github.com/fortizbank/fortiz/infra/repository/account"
	alertrepo "github.com/fortizbank/fortiz/infra/repository/alert"
	kycrepo "github.com/fortizbank/fortiz/infra/repository/kyc"
	transactionrepo "github.com/fortizbank/fortiz/infra/repository/transaction"
	transferrepo "github.com/fortizbank/fortiz/infra/repository/transfer"
	userrepo "github.com/fortizbank/fortiz/infra/repository/user"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/fortizbank/fortiz/pkg/repository/account"
	"github.com/fortizbank/fortiz/pkg/repository/alert"
	"github.com/fortizbank/fortiz/pkg/repository/kyc"
	"github.com/fortizbank/fortiz/pkg/repository/transaction"
	"github.com/fortizbank/fortiz/pkg/repository/transfer"
	"github.com/fortizbank/fortiz/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			typeOf[account.Repository]():     func(db *gorm.DB) any { return accountrepo.New(db) },
			typeOf[transaction.Repository](): func(db *gorm.DB) any { return transactionrepo.New(db) },
			typeOf[user.Repository]():        func(db *gorm.DB) any { return userrepo.New(db) },
			typeOf[transfer.Repository]():    func(db *gorm.DB) any { return transferrepo.New(db) },
			typeOf[alert.Repository]():       func(db *gorm.DB) any { return alertrepo.New(db) },
			typeOf[kyc.Repository]():         func(db *gorm.DB) any { return kycrepo.New(db) },
		},
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository returns a repository bound to the transaction when inside Do
// and to the plain connection otherwise.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func getRepository[T any](u *UoW) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(typeOf[T]())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("repository %v has unexpected type %T", typeOf[T](), repoAny)
	}
	return repo, nil
}

// AccountRepository returns the account repository bound to the current session.
func (u *UoW) AccountRepository() (account.Repository, error) {
	return getRepository[account.Repository](u)
}

// TransactionRepository returns the transaction repository bound to the current session.
func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return getRepository[transaction.Repository](u)
}

// UserRepository returns the user repository bound to the current session.
func (u *UoW) UserRepository() (user.Repository, error) {
	return getRepository[user.Repository](u)
}

// TransferRepository returns the transfer repository bound to the current session.
func (u *UoW) TransferRepository() (transfer.Repository, error) {
	return getRepository[transfer.Repository](u)
}

// AlertRepository returns the alert repository bound to the current session.
func (u *UoW) AlertRepository() (alert.Repository, error) {
	return getRepository[alert.Repository](u)
}

// KycRepository returns the KYC repository bound to the current session.
func (u *UoW) KycRepository() (kyc.Repository, error) {
	return getRepository[kyc.Repository](u)
}
