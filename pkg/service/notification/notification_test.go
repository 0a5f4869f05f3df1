package notification_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fortizbank/fortiz/internal/fixtures/mocks"
	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/domain/events"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/service/notification"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type otherEvent struct{}

func (otherEvent) Type() string { return "Other" }

func TestHandle_ResolvesRecipient(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	users := mocks.NewMockUserRepository(t)
	sender := mocks.NewMockSender(t)
	userID := uuid.New()
	params := map[string]string{"amount": "40.00"}

	uow.On("UserRepository").Return(users, nil).Once()
	users.On("Get", mock.Anything, userID).Return(&dto.UserRead{ID: userID, Email: "jane@example.com"}, nil).Once()
	sender.On("Send", mock.Anything, "jane@example.com", events.TemplateTransferCompleted, params).Return(nil).Once()

	svc := notification.New(uow, sender, slog.Default())
	err := svc.Handle(context.Background(), events.NewNotificationRequested(userID, events.TemplateTransferCompleted, params))
	require.NoError(t, err)
}

func TestHandle_UsesEventEmail(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	sender := mocks.NewMockSender(t)

	evt := events.NewNotificationRequested(uuid.New(), events.TemplateKycApproved, nil)
	evt.Email = "john@example.com"
	sender.On("Send", mock.Anything, "john@example.com", events.TemplateKycApproved, mock.Anything).Return(nil).Once()

	svc := notification.New(uow, sender, slog.Default())
	require.NoError(t, svc.Handle(context.Background(), evt))
}

func TestHandle_UnknownUser(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	users := mocks.NewMockUserRepository(t)
	sender := mocks.NewMockSender(t)

	uow.On("UserRepository").Return(users, nil).Once()
	users.On("Get", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Once()

	svc := notification.New(uow, sender, slog.Default())
	err := svc.Handle(context.Background(), events.NewNotificationRequested(uuid.New(), events.TemplateKycRejected, nil))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_SenderError(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	sender := mocks.NewMockSender(t)
	sendErr := errors.New("provider down")

	evt := events.NewNotificationRequested(uuid.New(), events.TemplateTransferCancelled, nil)
	evt.Email = "jane@example.com"
	sender.On("Send", mock.Anything, "jane@example.com", events.TemplateTransferCancelled, mock.Anything).Return(sendErr).Once()

	svc := notification.New(uow, sender, slog.Default())
	assert.ErrorIs(t, svc.Handle(context.Background(), evt), sendErr)
}

func TestHandle_RejectsOtherEvents(t *testing.T) {
	svc := notification.New(mocks.NewMockUnitOfWork(t), mocks.NewMockSender(t), slog.Default())
	assert.ErrorIs(t, svc.Handle(context.Background(), otherEvent{}), notification.ErrUnexpectedEvent)
}

func TestRegister_SubscribesToNotificationRequests(t *testing.T) {
	bus := mocks.NewMockBus(t)
	bus.On("Register", events.EventTypeNotificationRequested, mock.Anything).Once()

	notification.New(mocks.NewMockUnitOfWork(t), mocks.NewMockSender(t), slog.Default()).Register(bus)
}
