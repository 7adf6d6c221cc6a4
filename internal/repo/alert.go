package repo

import (
	"context"
	"time"

	"github.com/ftarasenko/driftwatch/internal/entity"
	"gorm.io/gorm"
)

type AlertRepo interface {
	Create(ctx context.Context, alert entity.Alert) (int64, error)
	FindSince(ctx context.Context, target string, since time.Time) ([]entity.Alert, error)
	CountSince(ctx context.Context, target string, since time.Time) (int64, error)
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepo {
	return &alertRepo{
		db: db,
	}
}

func (r *alertRepo) Create(ctx context.Context, alert entity.Alert) (int64, error) {
	err := r.db.WithContext(ctx).Create(&alert).Error
	if err != nil {
		return 0, err
	}
	return alert.Id, nil
}

func (r *alertRepo) FindSince(ctx context.Context, target string, since time.Time) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := r.db.WithContext(ctx).
		Where("target_symbol = ? AND created_at >= ?", target, since).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepo) CountSince(ctx context.Context, target string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Alert{}).
		Where("target_symbol = ? AND created_at >= ?", target, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
