package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// TransactionHistoryReader lists indexed transactions for a user.
type TransactionHistoryReader interface {
	ListRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// UserIdentifierReader resolves users by id or by username.
type UserIdentifierReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// RecentActivityCache caches recent-transaction listings per user.
type RecentActivityCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
	Set(ctx context.Context, userID uuid.UUID, transactions []models.TransactionDB) error
}

// HistoryService answers read-only user and recent-activity queries.
type HistoryService struct {
	users        UserIdentifierReader
	transactions TransactionHistoryReader
	cache        RecentActivityCache
}

// NewHistoryService creates a new HistoryService. cache may be nil.
func NewHistoryService(users UserIdentifierReader, transactions TransactionHistoryReader, cache RecentActivityCache) *HistoryService {
	return &HistoryService{
		users:        users,
		transactions: transactions,
		cache:        cache,
	}
}

// GetRecentTransactions returns the user's recent transactions, newest
// first, capped at MaxRecentTransactions. The identifier may be a user id or
// a username.
func (s *HistoryService) GetRecentTransactions(ctx context.Context, identifier string) ([]models.TransactionDB, error) {
	user, err := s.resolveUser(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("user not found", "identifier", identifier)
		return nil, ErrUserNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to read recent transactions cache", "user_id", user.UserID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	transactions, err := s.transactions.ListRecentByUserID(ctx, user.UserID, models.MaxRecentTransactions)
	if err != nil {
		logger.Log.Errorw("failed to list recent transactions", "user_id", user.UserID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user.UserID, transactions); err != nil {
			logger.Log.Errorw("failed to cache recent transactions", "user_id", user.UserID, "error", err)
		}
	}

	return transactions, nil
}

// UserExists reports whether a user with the given id or username exists.
func (s *HistoryService) UserExists(ctx context.Context, identifier string) (bool, error) {
	user, err := s.resolveUser(ctx, identifier)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// resolveUser parses the identifier as a UUID first and falls back to a
// username lookup.
func (s *HistoryService) resolveUser(ctx context.Context, identifier string) (*models.UserDB, error) {
	if userID, err := uuid.Parse(identifier); err == nil {
		return s.users.GetByID(ctx, userID)
	}
	return s.users.GetByUsername(ctx, identifier)
}
