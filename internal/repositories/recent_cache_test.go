package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

func TestRecentActivityCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewRecentActivityCacheRepository(rdb, 2*time.Second)

	userID := uuid.New()
	listing := []models.TransactionDB{
		{
			TransactionID:  uuid.New(),
			Amount:         decimal.NewFromInt(50),
			Type:           models.TransactionTypeAccountTransfer,
			Status:         models.TransactionStatusNotified,
			SenderUserID:   userID,
			SenderUsername: "fridaklo",
		},
	}

	t.Run("Set and Get listing", func(t *testing.T) {
		err := repo.Set(ctx, userID, listing)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, listing[0].TransactionID, got[0].TransactionID)
		assert.True(t, got[0].Amount.Equal(listing[0].Amount))
	})

	t.Run("Get missing key is a miss, not an error", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate drops the listing", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, userID, listing))
		require.NoError(t, repo.Invalidate(ctx, userID))

		got, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate without users is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Invalidate(ctx))
	})

	t.Run("Cached listing expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, userID, listing))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
