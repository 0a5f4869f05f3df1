package admin_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/fortizbank/fortiz/internal/fixtures/mocks"
	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/domain/events"
	domkyc "github.com/fortizbank/fortiz/pkg/domain/kyc"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/fortizbank/fortiz/pkg/service/admin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow      *mocks.MockUnitOfWork
	subs     *mocks.MockKycRepository
	users    *mocks.MockUserRepository
	accounts *mocks.MockAccountRepository
	alerts   *mocks.MockAlertRepository
	bus      *mocks.MockBus
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:      mocks.NewMockUnitOfWork(t),
		subs:     mocks.NewMockKycRepository(t),
		users:    mocks.NewMockUserRepository(t),
		accounts: mocks.NewMockAccountRepository(t),
		alerts:   mocks.NewMockAlertRepository(t),
		bus:      mocks.NewMockBus(t),
	}
	f.uow.On("Do", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error { return fn(f.uow) },
	).Maybe()
	f.uow.On("KycRepository").Return(f.subs, nil).Maybe()
	f.uow.On("UserRepository").Return(f.users, nil).Maybe()
	f.uow.On("AccountRepository").Return(f.accounts, nil).Maybe()
	f.uow.On("AlertRepository").Return(f.alerts, nil).Maybe()
	return f
}

func (f *fixture) service() *admin.Service {
	return admin.New(f.uow, f.bus, slog.Default())
}

func TestReviewKyc_ApproveOpensAccounts(t *testing.T) {
	f := newFixture(t)
	reviewer, userID, id := uuid.New(), uuid.New(), uuid.New()

	f.subs.On("Get", mock.Anything, id).Return(&dto.KycRead{ID: id, UserID: userID, Status: "pending"}, nil).Once()
	f.subs.On("Review", mock.Anything, id, mock.MatchedBy(func(r dto.KycReview) bool {
		return r.Status == "approved" && r.ReviewerID == reviewer && r.Notes == "looks good"
	})).Return(nil).Once()
	f.users.On("UpdateKycStatus", mock.Anything, userID, "verified").Return(nil).Once()
	f.accounts.On("ListByUser", mock.Anything, userID).Return(nil, nil).Once()
	f.accounts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AccountCreate) bool {
		return c.AccountType == "checking" && c.UserID == userID && c.Balance.IsZero() && len(c.AccountNumber) == 12
	})).Return(nil).Once()
	f.accounts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AccountCreate) bool {
		return c.AccountType == "savings"
	})).Return(nil).Once()
	f.alerts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AlertCreate) bool {
		return c.Title == "KYC Approved" && c.UserID == userID
	})).Return(nil).Once()
	f.bus.On("Emit", mock.Anything, mock.MatchedBy(func(e *events.NotificationRequested) bool {
		return e.Template == events.TemplateKycApproved
	})).Return(nil).Once()

	sub, err := f.service().ReviewKyc(context.Background(), reviewer, id, "approve", " looks good ")

	require.NoError(t, err)
	assert.Equal(t, "approved", sub.Status)
	assert.Equal(t, &reviewer, sub.ReviewerID)
}

func TestReviewKyc_ApproveKeepsExistingAccounts(t *testing.T) {
	f := newFixture(t)
	userID, id := uuid.New(), uuid.New()

	f.subs.On("Get", mock.Anything, id).Return(&dto.KycRead{ID: id, UserID: userID, Status: "pending"}, nil).Once()
	f.subs.On("Review", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.users.On("UpdateKycStatus", mock.Anything, userID, "verified").Return(nil).Once()
	f.accounts.On("ListByUser", mock.Anything, userID).Return([]*dto.AccountRead{{ID: uuid.New()}}, nil).Once()
	f.alerts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.bus.On("Emit", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.service().ReviewKyc(context.Background(), uuid.New(), id, "approve", "")

	require.NoError(t, err)
	f.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewKyc_Reject(t *testing.T) {
	f := newFixture(t)
	userID, id := uuid.New(), uuid.New()

	f.subs.On("Get", mock.Anything, id).Return(&dto.KycRead{ID: id, UserID: userID, Status: "pending"}, nil).Once()
	f.subs.On("Review", mock.Anything, id, mock.MatchedBy(func(r dto.KycReview) bool { return r.Status == "rejected" })).
		Return(nil).Once()
	f.users.On("UpdateKycStatus", mock.Anything, userID, "rejected").Return(nil).Once()
	f.alerts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AlertCreate) bool { return c.Title == "KYC Rejected" })).
		Return(nil).Once()
	f.bus.On("Emit", mock.Anything, mock.Anything).Return(nil).Once()

	sub, err := f.service().ReviewKyc(context.Background(), uuid.New(), id, "reject", "blurry document")

	require.NoError(t, err)
	assert.Equal(t, "rejected", sub.Status)
	f.accounts.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestReviewKyc_Errors(t *testing.T) {
	t.Run("invalid action", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service().ReviewKyc(context.Background(), uuid.New(), uuid.New(), "maybe", "")
		assert.ErrorIs(t, err, domkyc.ErrInvalidAction)
	})
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.subs.On("Get", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
		_, err := f.service().ReviewKyc(context.Background(), uuid.New(), id, "approve", "")
		assert.ErrorIs(t, err, domkyc.ErrSubmissionNotFound)
	})
	t.Run("already reviewed", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.subs.On("Get", mock.Anything, id).Return(&dto.KycRead{ID: id, Status: "approved"}, nil).Once()
		_, err := f.service().ReviewKyc(context.Background(), uuid.New(), id, "reject", "")
		assert.ErrorIs(t, err, domkyc.ErrAlreadyReviewed)
	})
}

func TestListKyc_ValidatesStatus(t *testing.T) {
	f := newFixture(t)
	_, err := f.service().ListKyc(context.Background(), "unknown")
	assert.ErrorIs(t, err, domain.ErrValidation)

	f.subs.On("List", mock.Anything, "pending").Return(nil, nil).Once()
	list, err := f.service().ListKyc(context.Background(), "pending")
	require.NoError(t, err)
	assert.NotNil(t, list)
}

func TestListUsers_DefaultsPageSize(t *testing.T) {
	f := newFixture(t)
	f.users.On("List", mock.Anything, 1, admin.DefaultPageSize).Return([]*dto.UserRead{{ID: uuid.New()}}, nil).Once()

	users, err := f.service().ListUsers(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateRole(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.users.On("UpdateRole", mock.Anything, id, "admin").Return(nil).Once()
	require.NoError(t, f.service().UpdateRole(context.Background(), id, "admin"))

	assert.ErrorIs(t, f.service().UpdateRole(context.Background(), id, "root"), user.ErrInvalidRole)

	missing := uuid.New()
	f.users.On("UpdateRole", mock.Anything, missing, "customer").Return(domain.ErrNotFound).Once()
	assert.ErrorIs(t, f.service().UpdateRole(context.Background(), missing, "customer"), user.ErrUserNotFound)
}

func TestUserAccounts(t *testing.T) {
	f := newFixture(t)
	u := &dto.UserRead{ID: uuid.New(), Email: "jane@example.com"}
	f.users.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil).Once()
	f.accounts.On("ListByUser", mock.Anything, u.ID).Return([]*dto.AccountRead{{ID: uuid.New()}}, nil).Once()

	got, accounts, err := f.service().UserAccounts(context.Background(), "Jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Len(t, accounts, 1)
}
