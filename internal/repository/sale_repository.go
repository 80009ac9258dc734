package repository

import (
	"app/internal/domain/model"
	"context"
)

// 販売台帳。追記と読み出しだけで、更新・削除は無い。
type SaleRepository interface {
	Append(ctx context.Context, s model.Sale) (model.Sale, error)

	// timestampの降順で全件
	List(ctx context.Context) ([]model.Sale, error)
}
