package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全商品をupdated_atの降順で返す。
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order("updated_at desc").Order("id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の部分更新。パッチにあるカラムだけUPDATEする。
func (r *ProductGormRepository) Update(ctx context.Context, id string, patch repo.ProductPatch) (model.Product, error) {
	values := map[string]interface{}{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Category != nil {
		values["category"] = *patch.Category
	}
	if patch.Barcode != nil {
		values["barcode"] = *patch.Barcode
	}
	if patch.Unit != nil {
		values["unit"] = *patch.Unit
	}
	if patch.CostPrice != nil {
		values["cost_price"] = *patch.CostPrice
	}
	if patch.SellPrice != nil {
		values["sell_price"] = *patch.SellPrice
	}
	if patch.Stock != nil {
		values["stock"] = *patch.Stock
	}
	if patch.LowStockLimit != nil {
		values["low_stock_limit"] = *patch.LowStockLimit
	}

	if len(values) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Product{}).
			Where("id = ?", id).
			Updates(values)
		if res.Error != nil {
			return model.Product{}, res.Error
		}
		if res.RowsAffected == 0 {
			return model.Product{}, repo.ErrNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// 商品削除（物理削除）。過去のSaleはスナップショットなので残る。
func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
