package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/db"
)

func setupOrderRepositoryTest(t *testing.T) OrderRepository {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewOrderRepository(testDB)
}

func TestOrderRepository_Create(t *testing.T) {
	orderRepo := setupOrderRepositoryTest(t)

	order := &model.Order{
		UserID: "user-1",
		Items:  datatypes.JSON(`[{"product_id":1,"quantity":2}]`),
		Total:  5980,
		Status: model.OrderStatusPending,
	}
	err := orderRepo.Create(order)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)

	found, err := orderRepo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.UserID)
	assert.Equal(t, int64(5980), found.Total)
	assert.Equal(t, model.OrderStatusPending, found.Status)
	assert.JSONEq(t, `[{"product_id":1,"quantity":2}]`, string(found.Items))
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	orderRepo := setupOrderRepositoryTest(t)

	_, err := orderRepo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepository_FindByUserID_NewestFirst(t *testing.T) {
	orderRepo := setupOrderRepositoryTest(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		order := &model.Order{
			UserID:    "user-1",
			Items:     datatypes.JSON(`[]`),
			Total:     int64(1000 * (i + 1)),
			Status:    model.OrderStatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, orderRepo.Create(order))
	}
	// Another user's order must not leak in
	require.NoError(t, orderRepo.Create(&model.Order{
		UserID: "user-2",
		Items:  datatypes.JSON(`[]`),
		Total:  99,
	}))

	orders, err := orderRepo.FindByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, int64(3000), orders[0].Total)
	assert.Equal(t, int64(2000), orders[1].Total)
	assert.Equal(t, int64(1000), orders[2].Total)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	orderRepo := setupOrderRepositoryTest(t)

	order := &model.Order{
		UserID: "user-1",
		Items:  datatypes.JSON(`[]`),
		Total:  100,
		Status: model.OrderStatusPending,
	}
	require.NoError(t, orderRepo.Create(order))

	err := orderRepo.UpdateStatus(order.ID, model.OrderStatusCompleted)
	require.NoError(t, err)

	found, err := orderRepo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, found.Status)
}
