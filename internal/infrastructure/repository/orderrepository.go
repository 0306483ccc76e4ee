package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campushub/internal/domain/order"
	"campushub/internal/infrastructure/persistence/mappers"
	"campushub/internal/infrastructure/persistence/models"
	"campushub/internal/shared/db"
	"campushub/internal/shared/errors"
)

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     database,
		mapper: mappers.NewOrderMapper(),
	}
}

// SavePending stores the student's pending order, replacing any previous one.
// The single-pending-slot rule is enforced by the unique index on
// student_username.
func (r *OrderRepository) SavePending(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToPendingModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_username"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save pending order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindPending(ctx context.Context, studentUsername string) (*order.Order, error) {
	var model models.PendingOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("student_username = ?", studentUsername).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no pending order")
		}
		return nil, fmt.Errorf("failed to find pending order: %w", err)
	}

	return r.mapper.PendingToDomain(&model), nil
}

func (r *OrderRepository) DeletePending(ctx context.Context, studentUsername string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("student_username = ?", studentUsername).
		Delete(&models.PendingOrderModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete pending order: %w", err)
	}
	return nil
}

func (r *OrderRepository) AppendCompleted(ctx context.Context, o *order.Order) error {
	model := r.mapper.ToCompletedModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save completed order: %w", err)
	}
	return nil
}

func (r *OrderRepository) ListCompleted(ctx context.Context, studentUsername string) ([]*order.Order, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CompletedOrderModel
	err := tx.
		Where("student_username = ?", studentUsername).
		Order("ordered_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list completed orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, r.mapper.CompletedToDomain(&rows[i]))
	}
	return orders, nil
}
