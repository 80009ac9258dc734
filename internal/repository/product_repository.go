package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 部分更新パッチ。nilのフィールドは変更しない。
type ProductPatch struct {
	Name          *string
	Category      *string
	Barcode       *string
	Unit          *model.Unit
	CostPrice     *int64
	SellPrice     *int64
	Stock         *int64
	LowStockLimit *int64
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// updated_atの降順で全件
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// パッチで指定されたフィールドだけ更新し、更新後の商品を返す
	Update(ctx context.Context, id string, patch ProductPatch) (model.Product, error)
	Delete(ctx context.Context, id string) error
}
