package transfer_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/fortizbank/fortiz/internal/fixtures/mocks"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/service/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type recordingInvalidator struct {
	mu    sync.Mutex
	users []uuid.UUID
}

func (r *recordingInvalidator) Invalidate(_ context.Context, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, userID)
}

type fixture struct {
	userID    uuid.UUID
	uow       *mocks.MockUnitOfWork
	accounts  *mocks.MockAccountRepository
	txs       *mocks.MockTransactionRepository
	transfers *mocks.MockTransferRepository
	alerts    *mocks.MockAlertRepository
	bus       *mocks.MockBus
	cache     *recordingInvalidator
	cfg       *config.Transfer
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		userID:    uuid.New(),
		uow:       mocks.NewMockUnitOfWork(t),
		accounts:  mocks.NewMockAccountRepository(t),
		txs:       mocks.NewMockTransactionRepository(t),
		transfers: mocks.NewMockTransferRepository(t),
		alerts:    mocks.NewMockAlertRepository(t),
		bus:       mocks.NewMockBus(t),
		cache:     &recordingInvalidator{},
		cfg:       &config.Transfer{MfaThreshold: decimal.NewFromInt(1000)},
	}
	f.uow.On("AccountRepository").Return(f.accounts, nil).Maybe()
	f.uow.On("TransactionRepository").Return(f.txs, nil).Maybe()
	f.uow.On("TransferRepository").Return(f.transfers, nil).Maybe()
	f.uow.On("AlertRepository").Return(f.alerts, nil).Maybe()
	return f
}

func (f *fixture) service() *transfer.Service {
	return transfer.New(f.uow, f.bus, f.cache, f.cfg, slog.Default())
}

func newAccount(userID uuid.UUID, accountType string, balance int64) *dto.AccountRead {
	return &dto.AccountRead{
		ID:               uuid.New(),
		UserID:           userID,
		AccountNumber:    "000000000001",
		AccountType:      accountType,
		Currency:         "USD",
		Balance:          decimal.NewFromInt(balance),
		AvailableBalance: decimal.NewFromInt(balance),
		Status:           "active",
	}
}

func amountOf(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func balances(balance, available int64) any {
	return mock.MatchedBy(func(u dto.BalanceUpdate) bool {
		return u.Balance.Equal(decimal.NewFromInt(balance)) &&
			u.AvailableBalance.Equal(decimal.NewFromInt(available))
	})
}

func decimalOf(v int64) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(v))
	})
}
