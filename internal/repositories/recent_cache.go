package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// RecentActivityCacheRepository caches recent-transaction listings in Redis.
type RecentActivityCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached listings
}

// NewRecentActivityCacheRepository creates a new repository instance with optional TTL
func NewRecentActivityCacheRepository(client *redis.Client, expiration time.Duration) *RecentActivityCacheRepository {
	return &RecentActivityCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func recentKey(userID uuid.UUID) string {
	return fmt.Sprintf("recent_transactions:%s", userID)
}

// Get returns the cached listing for the user, or nil on a cache miss.
func (r *RecentActivityCacheRepository) Get(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	key := recentKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var transactions []models.TransactionDB
	if err := json.Unmarshal([]byte(val), &transactions); err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(transactions),
		"error", nil,
	)

	return transactions, nil
}

// Set caches the listing for the user with the configured expiration.
func (r *RecentActivityCacheRepository) Set(ctx context.Context, userID uuid.UUID, transactions []models.TransactionDB) error {
	key := recentKey(userID)

	data, err := json.Marshal(transactions)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops cached listings for the given users after a transfer
// touched them.
func (r *RecentActivityCacheRepository) Invalidate(ctx context.Context, userIDs ...uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, recentKey(id))
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"keys", keys,
		"result", "ok",
		"error", err,
	)

	return err
}
