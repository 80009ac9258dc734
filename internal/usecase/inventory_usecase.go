package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// InventoryUsecaseは商品と在庫の書き込み側をすべて持つ。
// 在庫（stock）を動かすのはここだけ。
type InventoryUsecase struct {
	products repo.ProductRepository
	tx       repo.TransactionManager
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewInventoryUsecase(
	products repo.ProductRepository,
	tx repo.TransactionManager,
	idGen IDGenerator,
	clock Clock,
) *InventoryUsecase {
	return &InventoryUsecase{
		products: products,
		tx:       tx,
		idGen:    idGen,
		clock:    clock,
	}
}

// 商品作成の入力
type CreateProductInput struct {
	Name          string
	Category      string
	Barcode       string
	Unit          model.Unit
	CostPrice     int64
	SellPrice     int64
	Stock         int64
	LowStockLimit *int64 // nilならデフォルト5
}

// 部分更新の入力。nilのフィールドは触らない。
type UpdateProductInput struct {
	Name          *string
	Category      *string
	Barcode       *string
	Unit          *model.Unit
	CostPrice     *int64
	SellPrice     *int64
	Stock         *int64
	LowStockLimit *int64
}

// RecordSaleは販売を記録する。
// 検証 → 条件付き減算 → 台帳追記を1トランザクションで行うので、
// 同じ商品への同時販売が重なっても在庫が0未満になることはない。
// 失敗したときは台帳追記も減算も残らない。
func (u *InventoryUsecase) RecordSale(ctx context.Context, productID string, quantity int64) (model.Sale, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Sale{}, NewValidationError("product_id", "required")
	}
	if quantity <= 0 {
		return model.Sale{}, ErrInvalidQuantity
	}

	var sale model.Sale

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return repo.ErrNotFound
		}
		if err != nil {
			return NewStorageError(err)
		}

		// 早期チェック。競合時の最終判定は条件付き減算が行う
		if quantity > p.Stock {
			return ErrInsufficientStock
		}

		// 在庫減算（足りないなら false）
		ok, err := r.Inventory().DecreaseStockIfEnough(ctx, p.ID, quantity)
		if err != nil {
			return NewStorageError(err)
		}
		if !ok {
			return ErrInsufficientStock
		}

		// 販売時点の価格・単位をスナップショット
		now := u.clock.Now()
		created, err := r.Sales().Append(ctx, model.Sale{
			ID:          u.idGen.NewID(),
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    quantity,
			Unit:        p.Unit,
			SellPrice:   p.SellPrice,
			CostPrice:   p.CostPrice,
			Total:       p.SellPrice * quantity,
			Profit:      (p.SellPrice - p.CostPrice) * quantity,
			Timestamp:   now,
		})
		if err != nil {
			// ロールバックで減算も戻る
			return NewStorageError(err)
		}

		sale = created
		return nil
	})

	if err != nil {
		return model.Sale{}, err
	}
	return sale, nil
}

// AdjustStockは手動の在庫調整（入荷、棚卸、±1ボタン）。
// 結果が負になるデルタはエラーにせず0で止める。販売台帳には書かない。
func (u *InventoryUsecase) AdjustStock(ctx context.Context, productID string, delta int64, reason string) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewValidationError("product_id", "required")
	}

	var out model.Product

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return repo.ErrNotFound
			}
			return NewStorageError(err)
		}

		if err := r.Inventory().ApplyDelta(ctx, productID, delta); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return repo.ErrNotFound
			}
			return NewStorageError(err)
		}

		// 調整履歴（集計には含めない）
		if err := r.Inventory().CreateAdjustment(ctx, model.StockAdjustment{
			ProductID: productID,
			Delta:     delta,
			Reason:    strings.TrimSpace(reason),
			CreatedAt: u.clock.Now(),
		}); err != nil {
			return NewStorageError(err)
		}

		p, err := r.Products().FindByID(ctx, productID)
		if err != nil {
			return NewStorageError(err)
		}
		out = p
		return nil
	})

	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// 商品作成
func (u *InventoryUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if len([]rune(name)) < 2 {
		return model.Product{}, NewValidationError("name", "too short")
	}
	if !in.Unit.Valid() {
		return model.Product{}, NewValidationError("unit", "unknown unit")
	}
	if in.CostPrice < 0 {
		return model.Product{}, NewValidationError("cost_price", "must be >= 0")
	}
	if in.SellPrice < 0 {
		return model.Product{}, NewValidationError("sell_price", "must be >= 0")
	}
	if in.Stock < 0 {
		return model.Product{}, NewValidationError("stock", "must be >= 0")
	}

	limit := model.DefaultLowStockLimit
	if in.LowStockLimit != nil {
		if *in.LowStockLimit < 0 {
			return model.Product{}, NewValidationError("low_stock_limit", "must be >= 0")
		}
		limit = *in.LowStockLimit
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = model.DefaultCategory
	}

	now := u.clock.Now()
	created, err := u.products.Create(ctx, model.Product{
		ID:            u.idGen.NewID(),
		Name:          name,
		Category:      category,
		Barcode:       strings.TrimSpace(in.Barcode),
		Unit:          in.Unit,
		CostPrice:     in.CostPrice,
		SellPrice:     in.SellPrice,
		Stock:         in.Stock,
		LowStockLimit: limit,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return model.Product{}, NewStorageError(err)
	}
	return created, nil
}

// 商品の部分更新。指定されたフィールドだけ変える
// （在庫だけのパッチで価格がリセットされたりしない）。
func (u *InventoryUsecase) UpdateProduct(ctx context.Context, productID string, in UpdateProductInput) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewValidationError("product_id", "required")
	}

	patch := repo.ProductPatch{
		Category:      in.Category,
		Barcode:       in.Barcode,
		Unit:          in.Unit,
		CostPrice:     in.CostPrice,
		SellPrice:     in.SellPrice,
		Stock:         in.Stock,
		LowStockLimit: in.LowStockLimit,
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len([]rune(name)) < 2 {
			return model.Product{}, NewValidationError("name", "too short")
		}
		patch.Name = &name
	}
	if in.Unit != nil && !in.Unit.Valid() {
		return model.Product{}, NewValidationError("unit", "unknown unit")
	}
	if in.CostPrice != nil && *in.CostPrice < 0 {
		return model.Product{}, NewValidationError("cost_price", "must be >= 0")
	}
	if in.SellPrice != nil && *in.SellPrice < 0 {
		return model.Product{}, NewValidationError("sell_price", "must be >= 0")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return model.Product{}, NewValidationError("stock", "must be >= 0")
	}
	if in.LowStockLimit != nil && *in.LowStockLimit < 0 {
		return model.Product{}, NewValidationError("low_stock_limit", "must be >= 0")
	}

	p, err := u.products.Update(ctx, productID, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, NewStorageError(err)
	}
	return p, nil
}

// 商品削除。過去のSaleはスナップショットを持つので連動削除はしない。
func (u *InventoryUsecase) DeleteProduct(ctx context.Context, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return NewValidationError("product_id", "required")
	}

	err := u.products.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		return NewStorageError(err)
	}
	return nil
}

// IDで商品を取得
func (u *InventoryUsecase) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewValidationError("product_id", "required")
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, NewStorageError(err)
	}
	return p, nil
}

// 商品一覧（updated_atの降順）
func (u *InventoryUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.products.List(ctx)
	if err != nil {
		return nil, NewStorageError(err)
	}
	return items, nil
}
