package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
)

func TestOrderRepository_CreateGetAndLink(t *testing.T) {
	db := newSeededDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &entities.Order{
		ID:          "ORD_001",
		CustomerID:  "C001",
		MerchantID:  "M001",
		DriverID:    "D001",
		Description: "paneer biryani",
		Items: []entities.OrderItem{
			{Name: "paneer biryani", Quantity: 1, UnitPrice: 370},
		},
		OrderedAt:      time.Now().Add(-30 * time.Minute),
		Status:         entities.OrderStatusDelivered,
		PaymentMethod:  "wallet",
		TotalAmount:    370,
		DeliveryCharge: 30,
		FinalAmount:    400,
	}
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByID(ctx, "ORD_001")
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusDelivered, got.Status)
	require.Len(t, got.Items, 1)
	require.Equal(t, float64(370), got.ItemsTotal())
	require.False(t, got.ComplaintID.Valid)

	require.NoError(t, repo.LinkComplaint(ctx, "ORD_001", "COMP_001"))
	got, err = repo.GetByID(ctx, "ORD_001")
	require.NoError(t, err)
	require.Equal(t, "COMP_001", got.ComplaintID.String)

	require.ErrorIs(t, repo.LinkComplaint(ctx, "ORD_404", "COMP_001"), domainerrors.ErrNotFound)
	_, err = repo.GetByID(ctx, "ORD_404")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	db := newSeededDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"ORD_001", "ORD_002"} {
		require.NoError(t, repo.Create(ctx, &entities.Order{
			ID:          id,
			CustomerID:  "C001",
			MerchantID:  "M001",
			OrderedAt:   base.Add(time.Duration(i) * time.Minute),
			Status:      entities.OrderStatusDelivered,
			TotalAmount: 100,
			FinalAmount: 130,
		}))
	}
	require.NoError(t, repo.Create(ctx, &entities.Order{
		ID: "ORD_003", CustomerID: "C002", MerchantID: "M001",
		OrderedAt: base, Status: entities.OrderStatusPlaced, TotalAmount: 10, FinalAmount: 40,
	}))

	mine, err := repo.ListByCustomer(ctx, "C001")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "ORD_001", mine[0].ID)
	require.NotNil(t, mine[0].Items)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}
