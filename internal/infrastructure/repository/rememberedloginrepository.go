package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campushub/internal/domain/auth"
	"campushub/internal/infrastructure/persistence/models"
	"campushub/internal/shared/db"
	"campushub/internal/shared/errors"
)

type RememberedLoginRepository struct {
	db *gorm.DB
}

func NewRememberedLoginRepository(database *gorm.DB) *RememberedLoginRepository {
	return &RememberedLoginRepository{db: database}
}

func (r *RememberedLoginRepository) Put(ctx context.Context, deviceKey string, login auth.RememberedLogin) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := &models.RememberedLoginModel{
		DeviceKey:    deviceKey,
		Username:     login.Username,
		Role:         login.Role,
		RememberedAt: login.RememberedAt.UnixMilli(),
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_key"}},
		UpdateAll: true,
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save remembered login: %w", err)
	}
	return nil
}

func (r *RememberedLoginRepository) Get(ctx context.Context, deviceKey string) (*auth.RememberedLogin, error) {
	var model models.RememberedLoginModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("device_key = ?", deviceKey).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no remembered login")
		}
		return nil, fmt.Errorf("failed to load remembered login: %w", err)
	}

	return &auth.RememberedLogin{
		Username:     model.Username,
		Role:         model.Role,
		RememberedAt: time.UnixMilli(model.RememberedAt).UTC(),
	}, nil
}

func (r *RememberedLoginRepository) Clear(ctx context.Context, deviceKey string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("device_key = ?", deviceKey).
		Delete(&models.RememberedLoginModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear remembered login: %w", err)
	}
	return nil
}
