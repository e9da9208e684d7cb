package usecase

import (
	"context"
	"testing"

	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCreateOrder(t *testing.T) {
	patientID := uuid.New()

	request := func(items int) *dto.CreateOrderRequest {
		req := &dto.CreateOrderRequest{
			PatientID:     patientID,
			TotalAmount:   decimal.NewFromInt(120),
			Address:       "42 Hill Road",
			PaymentMethod: "cod",
		}
		for i := 0; i < items; i++ {
			req.Items = append(req.Items, dto.OrderItemRequest{
				MedicineID: uuid.New(), Quantity: 2, Price: decimal.NewFromInt(60),
			})
		}
		return req
	}

	t.Run("success", func(t *testing.T) {
		orderRepo := &fakeOrderRepo{}
		audit := &fakeAudit{}
		u := NewOrderUsecase(testLogger(), &fakeTransactor{}, orderRepo, audit)

		got, err := u.Create(context.Background(), request(2))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if got.Status != string(entity.OrderStatusPending) {
			t.Fatalf("status = %q, want pending", got.Status)
		}
		if len(orderRepo.items) != 2 {
			t.Fatalf("stored items = %d, want 2", len(orderRepo.items))
		}
		if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionOrderCreate {
			t.Fatalf("audit actions = %v", audit.actions)
		}
	})

	t.Run("empty items rejected", func(t *testing.T) {
		tx := &fakeTransactor{}
		u := NewOrderUsecase(testLogger(), tx, &fakeOrderRepo{}, &fakeAudit{})

		if _, err := u.Create(context.Background(), request(0)); err != ErrNoItems {
			t.Fatalf("err = %v, want ErrNoItems", err)
		}
		if tx.began != 0 {
			t.Fatal("transaction opened for an invalid request")
		}
	})

	t.Run("item insert failure rolls back", func(t *testing.T) {
		orderRepo := &fakeOrderRepo{itemsErr: errStore}
		tx := &fakeTransactor{}
		u := NewOrderUsecase(testLogger(), tx, orderRepo, &fakeAudit{})

		if _, err := u.Create(context.Background(), request(1)); err != errStore {
			t.Fatalf("err = %v, want store failure", err)
		}
		if !tx.rolledBack {
			t.Fatal("expected the transaction to roll back")
		}
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	id := uuid.New()
	patientID := uuid.New()

	seeded := func() *fakeOrderRepo {
		return &fakeOrderRepo{orders: []entity.Order{{
			ID: id, PatientID: patientID,
			TotalAmount: decimal.NewFromInt(40),
			Status:      entity.OrderStatusPending, Address: "42 Hill Road",
		}}}
	}

	t.Run("valid transition", func(t *testing.T) {
		repo := seeded()
		u := NewOrderUsecase(testLogger(), &fakeTransactor{}, repo, &fakeAudit{})

		got, err := u.UpdateStatus(context.Background(), id, "shipped")
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if got.Status != "shipped" {
			t.Fatalf("status = %q, want shipped", got.Status)
		}
	})

	t.Run("backward move allowed by flat check", func(t *testing.T) {
		repo := seeded()
		repo.orders[0].Status = entity.OrderStatusDelivered
		u := NewOrderUsecase(testLogger(), &fakeTransactor{}, repo, &fakeAudit{})

		if _, err := u.UpdateStatus(context.Background(), id, "pending"); err != nil {
			t.Fatalf("UpdateStatus backward: %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		u := NewOrderUsecase(testLogger(), &fakeTransactor{}, seeded(), &fakeAudit{})

		if _, err := u.UpdateStatus(context.Background(), id, "returned"); err != ErrInvalidOrderStatus {
			t.Fatalf("err = %v, want ErrInvalidOrderStatus", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		u := NewOrderUsecase(testLogger(), &fakeTransactor{}, &fakeOrderRepo{}, &fakeAudit{})

		if _, err := u.UpdateStatus(context.Background(), uuid.New(), "shipped"); err != ErrOrderNotFound {
			t.Fatalf("err = %v, want ErrOrderNotFound", err)
		}
	})
}

func TestGetOrders(t *testing.T) {
	id := uuid.New()
	patientID := uuid.New()

	repo := &fakeOrderRepo{orders: []entity.Order{{
		ID: id, PatientID: patientID,
		TotalAmount: decimal.NewFromInt(75),
		Status:      entity.OrderStatusPending, Address: "42 Hill Road",
	}}}
	u := NewOrderUsecase(testLogger(), &fakeTransactor{}, repo, &fakeAudit{})

	t.Run("by id", func(t *testing.T) {
		got, err := u.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.ID != id {
			t.Fatalf("id = %s, want %s", got.ID, id)
		}
	})

	t.Run("by id missing", func(t *testing.T) {
		if _, err := u.GetByID(context.Background(), uuid.New()); err != ErrOrderNotFound {
			t.Fatalf("err = %v, want ErrOrderNotFound", err)
		}
	})

	t.Run("by patient", func(t *testing.T) {
		got, err := u.GetByPatient(context.Background(), patientID)
		if err != nil || got.Total != 1 {
			t.Fatalf("GetByPatient = %v total %d, want 1", err, got.Total)
		}
	})
}
