package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settingDomain "coopfin/internal/domain/setting"
)

type SettingRepository struct{ db *gorm.DB }

func NewSettingRepository(db *gorm.DB) *SettingRepository { return &SettingRepository{db: db} }

func (r *SettingRepository) List(ctx context.Context) ([]settingDomain.Setting, error) {
	var out []settingDomain.Setting
	res := r.db.WithContext(ctx).Order("`key` ASC").Find(&out)
	return out, res.Error
}

func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{"value": value}),
		}).
		Create(&settingDomain.Setting{Key: key, Value: value}).Error
}
