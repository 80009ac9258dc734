package repository

import (
	"app/internal/domain/model"
	"context"
)

type InventoryRepository interface {
	// 在庫が足りるときだけ減算（stock >= qty を条件に1文で更新）
	DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error)

	// 符号付きデルタを適用。結果が負になる場合は0で止める
	ApplyDelta(ctx context.Context, productID string, delta int64) error

	// 手動調整の履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.StockAdjustment) error
}
