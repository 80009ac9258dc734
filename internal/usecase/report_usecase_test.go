package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks（衝突回避の命名）
// =====================

type RepProductRepoMock struct{ mock.Mock }

func (m *RepProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *RepProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	panic("not used in ReportUsecase tests")
}

func (m *RepProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in ReportUsecase tests")
}

func (m *RepProductRepoMock) Update(ctx context.Context, id string, patch repo.ProductPatch) (model.Product, error) {
	panic("not used in ReportUsecase tests")
}

func (m *RepProductRepoMock) Delete(ctx context.Context, id string) error {
	panic("not used in ReportUsecase tests")
}

type RepSaleRepoMock struct{ mock.Mock }

func (m *RepSaleRepoMock) Append(ctx context.Context, s model.Sale) (model.Sale, error) {
	panic("not used in ReportUsecase tests")
}

func (m *RepSaleRepoMock) List(ctx context.Context) ([]model.Sale, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Sale)
	return items, args.Error(1)
}

// =====================
// ClassifyStock
// =====================

func TestClassifyStock_Boundaries(t *testing.T) {
	cases := []struct {
		stock int64
		limit int64
		want  model.StockLevel
	}{
		{stock: 11, limit: 10, want: model.StockLevelNormal},
		{stock: 10, limit: 10, want: model.StockLevelLow}, // stock == limit はlow
		{stock: 6, limit: 10, want: model.StockLevelLow},
		{stock: 5, limit: 10, want: model.StockLevelCritical}, // max(1, 10/2) = 5
		{stock: 0, limit: 10, want: model.StockLevelCritical},
		{stock: 1, limit: 0, want: model.StockLevelCritical}, // limit 0でも閾値は最低1
		{stock: 2, limit: 0, want: model.StockLevelNormal},
		{stock: 1, limit: 3, want: model.StockLevelCritical}, // 3/2は切り捨てで1
		{stock: 2, limit: 3, want: model.StockLevelLow},
	}

	for _, c := range cases {
		got := usecase.ClassifyStock(model.Product{Stock: c.stock, LowStockLimit: c.limit})
		assert.Equal(t, c.want, got, "stock=%d limit=%d", c.stock, c.limit)
	}
}

// =====================
// CalcWindowStats
// =====================

func saleAt(ts time.Time, name string, qty, total, profit int64) model.Sale {
	return model.Sale{
		ProductName: name,
		Quantity:    qty,
		Total:       total,
		Profit:      profit,
		Timestamp:   ts,
	}
}

func TestCalcWindowStats(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)

	sales := []model.Sale{
		saleAt(from.Add(-time.Second), "old", 1, 100, 10), // 窓の外
		saleAt(from, "edge", 2, 200, 20),                  // 境界ちょうどは含む
		saleAt(from.Add(5*time.Hour), "new", 3, 300, 30),
	}

	got := usecase.CalcWindowStats(sales, from)
	assert.Equal(t, int64(500), got.TotalRevenue)
	assert.Equal(t, int64(50), got.TotalProfit)
	assert.Equal(t, int64(5), got.TotalItems)
}

func TestCalcWindowStats_Idempotent(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	sales := []model.Sale{
		saleAt(from.Add(time.Hour), "a", 1, 150, 50),
		saleAt(from.Add(2*time.Hour), "b", 2, 300, 100),
	}

	first := usecase.CalcWindowStats(sales, from)
	second := usecase.CalcWindowStats(sales, from)
	assert.Equal(t, first, second)
}

// =====================
// TopProducts
// =====================

func TestTopProducts_GroupsByNameAndOrders(t *testing.T) {
	now := time.Now()
	sales := []model.Sale{
		saleAt(now, "A", 5, 500, 0),
		saleAt(now, "B", 5, 250, 0),
		saleAt(now, "A", 2, 200, 0),
	}

	got := usecase.TopProducts(sales, 10)
	assert.Len(t, got, 2)
	assert.Equal(t, usecase.ProductRank{Name: "A", Quantity: 7, Revenue: 700}, got[0])
	assert.Equal(t, usecase.ProductRank{Name: "B", Quantity: 5, Revenue: 250}, got[1])
}

func TestTopProducts_TieKeepsFirstSeenOrder(t *testing.T) {
	now := time.Now()
	sales := []model.Sale{
		saleAt(now, "B", 5, 100, 0),
		saleAt(now, "A", 5, 900, 0),
	}

	got := usecase.TopProducts(sales, 10)
	// 同数なら先に出てきたBが上
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
}

func TestTopProducts_TruncatesToN(t *testing.T) {
	now := time.Now()
	sales := []model.Sale{
		saleAt(now, "A", 3, 0, 0),
		saleAt(now, "B", 2, 0, 0),
		saleAt(now, "C", 1, 0, 0),
	}

	got := usecase.TopProducts(sales, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)

	// n<=0ならデフォルトの10
	got = usecase.TopProducts(sales, 0)
	assert.Len(t, got, 3)
}

// =====================
// LowStockReport
// =====================

func TestLowStockReport_CriticalBeforeLow(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "ok", Stock: 100, LowStockLimit: 5},
		{ID: "2", Name: "low-1", Stock: 9, LowStockLimit: 10},
		{ID: "3", Name: "crit-1", Stock: 2, LowStockLimit: 10},
		{ID: "4", Name: "low-2", Stock: 10, LowStockLimit: 10},
		{ID: "5", Name: "crit-2", Stock: 0, LowStockLimit: 4},
	}

	got := usecase.LowStockReport(products)
	assert.Len(t, got, 4)
	assert.Equal(t, "crit-1", got[0].Product.Name)
	assert.Equal(t, "crit-2", got[1].Product.Name)
	assert.Equal(t, model.StockLevelCritical, got[0].Level)
	assert.Equal(t, "low-1", got[2].Product.Name)
	assert.Equal(t, "low-2", got[3].Product.Name)
	assert.Equal(t, model.StockLevelLow, got[3].Level)
}

// =====================
// 窓の境界
// =====================

func TestWindowStarts(t *testing.T) {
	// 2025-06-11は水曜
	wed := time.Date(2025, 6, 11, 15, 42, 30, 0, time.Local)

	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local), usecase.StartOfDay(wed))
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), usecase.StartOfWeek(wed))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), usecase.StartOfMonth(wed))

	// 日曜は前の週の月曜まで戻る
	sun := time.Date(2025, 6, 15, 8, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), usecase.StartOfWeek(sun))

	// 月曜はその日
	mon := time.Date(2025, 6, 9, 23, 59, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), usecase.StartOfWeek(mon))
}

// =====================
// Summary
// =====================

func TestReportUsecase_Summary(t *testing.T) {
	now := time.Date(2025, 6, 11, 18, 0, 0, 0, time.Local) // 水曜

	pRepo := new(RepProductRepoMock)
	sRepo := new(RepSaleRepoMock)
	uc := usecase.NewReportUsecase(pRepo, sRepo)

	sales := []model.Sale{
		saleAt(now.Add(-time.Hour), "A", 2, 200, 40),                             // 今日
		saleAt(time.Date(2025, 6, 9, 10, 0, 0, 0, time.Local), "B", 1, 100, 20),  // 今週（月曜）
		saleAt(time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local), "A", 3, 300, 60),  // 今月のみ
		saleAt(time.Date(2025, 5, 20, 10, 0, 0, 0, time.Local), "C", 9, 900, 90), // 先月（窓の外）
	}
	products := []model.Product{
		{ID: "1", Name: "A", Stock: 1, LowStockLimit: 10},
	}

	sRepo.On("List", mock.Anything).Return(sales, nil)
	pRepo.On("List", mock.Anything).Return(products, nil)

	out, err := uc.Summary(context.Background(), now)
	assert.NoError(t, err)

	assert.Equal(t, usecase.WindowStats{TotalRevenue: 200, TotalProfit: 40, TotalItems: 2}, out.Today)
	assert.Equal(t, usecase.WindowStats{TotalRevenue: 300, TotalProfit: 60, TotalItems: 3}, out.Week)
	assert.Equal(t, usecase.WindowStats{TotalRevenue: 600, TotalProfit: 120, TotalItems: 6}, out.Month)

	// 先月の販売もランキングには入る（ランキングは全期間）
	assert.Equal(t, "C", out.TopProducts[0].Name)
	assert.Len(t, out.LowStock, 1)
	assert.Equal(t, model.StockLevelCritical, out.LowStock[0].Level)
}

func TestReportUsecase_Summary_StorageError(t *testing.T) {
	pRepo := new(RepProductRepoMock)
	sRepo := new(RepSaleRepoMock)
	uc := usecase.NewReportUsecase(pRepo, sRepo)

	sRepo.On("List", mock.Anything).Return([]model.Sale(nil), assert.AnError)

	_, err := uc.Summary(context.Background(), time.Now())
	_, ok := usecase.AsStorageError(err)
	assert.True(t, ok)
}
