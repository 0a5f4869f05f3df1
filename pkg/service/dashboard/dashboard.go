// Package dashboard serves the read-only customer views: accounts,
// transactions, alerts and the cached dashboard summary.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fortizbank/fortiz/pkg/cache"
	"github.com/fortizbank/fortiz/pkg/domain"
	domaccount "github.com/fortizbank/fortiz/pkg/domain/account"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/fortizbank/fortiz/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// RecentTransactionsLimit is the number of transactions shown on the summary.
const RecentTransactionsLimit = 10

var (
	ErrAccountNotFound = domain.NewError(domain.ErrNotFound, "Account not found")
	ErrAlertNotFound   = domain.NewError(domain.ErrNotFound, "Alert not found")
)

type Service struct {
	uow    repository.UnitOfWork
	cache  cache.Cache
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// New creates a dashboard service. A nil cache or a zero ttl disables caching.
func New(uow repository.UnitOfWork, c cache.Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		uow:    uow,
		cache:  c,
		ttl:    ttl,
		logger: logger.With("service", "dashboard"),
	}
}

func cacheKey(userID uuid.UUID) string {
	return "dashboard:" + userID.String()
}

func (s *Service) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch accounts", err)
	}
	accounts, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.Dependency("Failed to fetch accounts", err)
	}
	if accounts == nil {
		accounts = []*dto.AccountRead{}
	}
	return accounts, nil
}

// ListTransactions lists the transactions of an account owned by userID, newest first.
func (s *Service) ListTransactions(ctx context.Context, userID, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch accounts", err)
	}
	if _, err := accounts.GetOwned(ctx, userID, accountID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, domain.Dependency("Failed to fetch accounts", err)
	}
	txs, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch transactions", err)
	}
	list, err := txs.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, domain.Dependency("Failed to fetch transactions", err)
	}
	if list == nil {
		list = []*dto.TransactionRead{}
	}
	return list, nil
}

// Summary returns the dashboard of userID. Results are cached per user and
// concurrent misses for one user share a single fill.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummary, error) {
	log := s.logger.With("context", "Summary", "user_id", userID)
	key := cacheKey(userID)

	if s.cachingEnabled() {
		data, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Warn("dashboard cache read failed", "error", err)
		}
		if ok {
			var summary dto.DashboardSummary
			if err := json.Unmarshal(data, &summary); err == nil {
				return &summary, nil
			}
			log.Warn("discarding undecodable dashboard cache entry", "error", err)
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		summary, err := s.build(ctx, userID)
		if err != nil {
			return nil, err
		}
		if s.cachingEnabled() {
			if data, err := json.Marshal(summary); err != nil {
				log.Warn("failed to encode dashboard summary", "error", err)
			} else if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				log.Warn("dashboard cache write failed", "error", err)
			}
		}
		return summary, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.DashboardSummary), nil
}

// Invalidate drops the cached summary of userID.
func (s *Service) Invalidate(ctx context.Context, userID uuid.UUID) {
	if !s.cachingEnabled() {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey(userID)); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", "user_id", userID, "error", err)
	}
}

func (s *Service) cachingEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

func (s *Service) build(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummary, error) {
	accounts, err := s.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	txRepo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch transactions", err)
	}
	txs, err := txRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, domain.Dependency("Failed to fetch transactions", err)
	}
	alerts, err := s.uow.AlertRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch alerts", err)
	}
	unread, err := alerts.CountUnread(ctx, userID)
	if err != nil {
		return nil, domain.Dependency("Failed to fetch alerts", err)
	}

	summary := &dto.DashboardSummary{
		TotalBalance:       decimal.Zero,
		TotalAvailable:     decimal.Zero,
		Accounts:           accounts,
		RecentTransactions: []*dto.TransactionRead{},
		CategoryBreakdown:  map[string]decimal.Decimal{},
		UnreadAlerts:       unread,
		GeneratedAt:        time.Now().UTC(),
	}
	for _, a := range accounts {
		summary.TotalBalance = summary.TotalBalance.Add(a.Balance)
		summary.TotalAvailable = summary.TotalAvailable.Add(a.AvailableBalance)
	}
	for i, tx := range txs {
		if i < RecentTransactionsLimit {
			summary.RecentTransactions = append(summary.RecentTransactions, tx)
		}
		if tx.Direction != string(domaccount.Debit) {
			continue
		}
		summary.CategoryBreakdown[tx.TransactionType] = summary.CategoryBreakdown[tx.TransactionType].Add(tx.Amount)
	}
	return summary, nil
}

func (s *Service) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*dto.AlertRead, error) {
	repo, err := s.uow.AlertRepository()
	if err != nil {
		return nil, domain.Dependency("Failed to fetch alerts", err)
	}
	alerts, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.Dependency("Failed to fetch alerts", err)
	}
	if alerts == nil {
		alerts = []*dto.AlertRead{}
	}
	return alerts, nil
}

// MarkAlertRead flags an alert of userID as read and refreshes the unread count.
func (s *Service) MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) error {
	repo, err := s.uow.AlertRepository()
	if err != nil {
		return domain.Dependency("Failed to update alert", err)
	}
	if err := repo.MarkRead(ctx, userID, alertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAlertNotFound
		}
		return domain.Dependency("Failed to update alert", fmt.Errorf("mark read %s: %w", alertID, err))
	}
	s.Invalidate(ctx, userID)
	return nil
}
