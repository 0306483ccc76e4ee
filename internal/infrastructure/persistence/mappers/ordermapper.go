package mappers

import (
	"time"

	"campushub/internal/domain/order"
	"campushub/internal/infrastructure/persistence/models"
)

type OrderMapper interface {
	ToPendingModel(o *order.Order) *models.PendingOrderModel
	PendingToDomain(model *models.PendingOrderModel) *order.Order
	ToCompletedModel(o *order.Order) *models.CompletedOrderModel
	CompletedToDomain(model *models.CompletedOrderModel) *order.Order
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToPendingModel(o *order.Order) *models.PendingOrderModel {
	return &models.PendingOrderModel{
		Number:          o.Number(),
		StudentUsername: o.StudentUsername(),
		ItemID:          o.ItemID(),
		ItemName:        o.ItemName(),
		UnitPrice:       o.UnitPrice(),
		Quantity:        o.Quantity(),
		Total:           o.Total(),
		OrderedAt:       o.OrderedAt().UnixMilli(),
	}
}

func (m *OrderMapperImpl) PendingToDomain(model *models.PendingOrderModel) *order.Order {
	return order.ReconstructOrder(
		model.Number,
		model.StudentUsername,
		model.ItemID,
		model.ItemName,
		model.UnitPrice,
		model.Quantity,
		model.Total,
		order.StatusPending,
		time.UnixMilli(model.OrderedAt).UTC(),
		nil,
	)
}

func (m *OrderMapperImpl) ToCompletedModel(o *order.Order) *models.CompletedOrderModel {
	model := &models.CompletedOrderModel{
		Number:          o.Number(),
		StudentUsername: o.StudentUsername(),
		ItemID:          o.ItemID(),
		ItemName:        o.ItemName(),
		UnitPrice:       o.UnitPrice(),
		Quantity:        o.Quantity(),
		Total:           o.Total(),
		OrderedAt:       o.OrderedAt().UnixMilli(),
	}
	if o.PaidAt() != nil {
		model.PaidAt = o.PaidAt().UnixMilli()
	}
	return model
}

func (m *OrderMapperImpl) CompletedToDomain(model *models.CompletedOrderModel) *order.Order {
	paidAt := time.UnixMilli(model.PaidAt).UTC()
	return order.ReconstructOrder(
		model.Number,
		model.StudentUsername,
		model.ItemID,
		model.ItemName,
		model.UnitPrice,
		model.Quantity,
		model.Total,
		order.StatusPaid,
		time.UnixMilli(model.OrderedAt).UTC(),
		&paidAt,
	)
}
