package usecase

import (
	"context"
	"errors"

	"github.com/Swastik2002/TrustMed/internal/converter"
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	"github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoItems            = errors.New("order must contain at least one item")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status value")
)

type OrderUsecase interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.OrderListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.OrderResponse, error)
}

type orderUsecase struct {
	log        *logrus.Logger
	transactor repository.Transactor
	orderRepo  repository.OrderRepository
	audit      service.AuditService
}

func NewOrderUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	orderRepo repository.OrderRepository,
	audit service.AuditService,
) OrderUsecase {
	return &orderUsecase{
		log:        log,
		transactor: transactor,
		orderRepo:  orderRepo,
		audit:      audit,
	}
}

// Create inserts the order row and all its item rows in one transaction.
func (u *orderUsecase) Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	order := &entity.Order{
		PatientID:     req.PatientID,
		TotalAmount:   req.TotalAmount,
		Status:        entity.OrderStatusPending,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	}

	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.orderRepo.Create(ctx, order); err != nil {
			u.log.Warnf("Failed to create order: %+v", err)
			return err
		}

		items := make([]entity.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, entity.OrderItem{
				OrderID:    order.ID,
				MedicineID: item.MedicineID,
				Quantity:   item.Quantity,
				Price:      item.Price,
			})
		}

		if err := u.orderRepo.CreateItems(ctx, items); err != nil {
			u.log.Warnf("Failed to create order items: %+v", err)
			return err
		}
		order.Items = items

		return u.audit.Record(ctx, &req.PatientID, entity.AuditActionOrderCreate, entity.JSON{
			"order_id":     order.ID.String(),
			"total_amount": order.TotalAmount.String(),
			"items":        len(items),
		})
	})
	if err != nil {
		return nil, err
	}

	response := converter.OrderToResponse(order)
	return &response, nil
}

func (u *orderUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find order %s: %+v", id, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	response := converter.OrderToResponse(order)
	return &response, nil
}

func (u *orderUsecase) GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.OrderListResponse, error) {
	orders, err := u.orderRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find orders for patient %s: %+v", patientID, err)
		return nil, err
	}

	response := converter.OrdersToListResponse(orders)
	return &response, nil
}

// UpdateStatus sets the order status to any allowed value; the check is
// membership only, the same way appointment statuses work.
func (u *orderUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.OrderResponse, error) {
	newStatus := entity.OrderStatus(status)
	if !entity.ValidOrderStatus(newStatus) {
		return nil, ErrInvalidOrderStatus
	}

	var order *entity.Order
	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := u.orderRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find order %s: %+v", id, err)
			return err
		}
		if found == nil {
			return ErrOrderNotFound
		}
		order = found

		rows, err := u.orderRepo.UpdateStatus(ctx, id, newStatus)
		if err != nil {
			u.log.Warnf("Failed to update order %s status: %+v", id, err)
			return err
		}
		if rows == 0 {
			return ErrOrderNotFound
		}
		order.Status = newStatus

		return u.audit.Record(ctx, &order.PatientID, entity.AuditActionOrderStatus, entity.JSON{
			"order_id": id.String(),
			"status":   status,
		})
	})
	if err != nil {
		return nil, err
	}

	response := converter.OrderToResponse(order)
	return &response, nil
}
