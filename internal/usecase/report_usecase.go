package usecase

import (
	"context"
	"sort"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ReportUsecaseは読み取り専用の集計。何も書き込まない。
type ReportUsecase struct {
	products repo.ProductRepository
	sales    repo.SaleRepository
}

// DI
func NewReportUsecase(products repo.ProductRepository, sales repo.SaleRepository) *ReportUsecase {
	return &ReportUsecase{products: products, sales: sales}
}

// 時間窓ごとの集計値
type WindowStats struct {
	TotalRevenue int64 `json:"total_revenue"`
	TotalProfit  int64 `json:"total_profit"`
	TotalItems   int64 `json:"total_items"`
}

// 売れ筋ランキングの1行
type ProductRank struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// 発注が必要な商品とそのレベル
type LowStockEntry struct {
	Product model.Product    `json:"product"`
	Level   model.StockLevel `json:"level"`
}

// レポート画面用のまとめ
type SummaryOutput struct {
	Today       WindowStats     `json:"today"`
	Week        WindowStats     `json:"week"`
	Month       WindowStats     `json:"month"`
	TopProducts []ProductRank   `json:"top_products"`
	LowStock    []LowStockEntry `json:"low_stock"`
}

// ClassifyStockは在庫レベルを判定する。
// criticalの閾値は必ずlow以下なので、criticalを先に見る。
func ClassifyStock(p model.Product) model.StockLevel {
	critical := p.LowStockLimit / 2
	if critical < 1 {
		critical = 1
	}
	if p.Stock <= critical {
		return model.StockLevelCritical
	}
	if p.Stock <= p.LowStockLimit {
		return model.StockLevelLow
	}
	return model.StockLevelNormal
}

// CalcWindowStatsはtimestamp >= fromの販売を合算する。
func CalcWindowStats(sales []model.Sale, from time.Time) WindowStats {
	var out WindowStats
	for _, s := range sales {
		if s.Timestamp.Before(from) {
			continue
		}
		out.TotalRevenue += s.Total
		out.TotalProfit += s.Profit
		out.TotalItems += s.Quantity
	}
	return out
}

// TopProductsは商品名でグルーピングして数量の多い順に上位nを返す。
// IDではなく「販売時点の名前」で束ねるので、削除済み商品の販売も集計に残る。
// 同数のときは先に出てきた方が上（安定ソート）。
func TopProducts(sales []model.Sale, n int) []ProductRank {
	if n <= 0 {
		n = 10
	}

	index := map[string]int{}
	ranks := []ProductRank{}
	for _, s := range sales {
		i, ok := index[s.ProductName]
		if !ok {
			i = len(ranks)
			index[s.ProductName] = i
			ranks = append(ranks, ProductRank{Name: s.ProductName})
		}
		ranks[i].Quantity += s.Quantity
		ranks[i].Revenue += s.Total
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Quantity > ranks[j].Quantity
	})

	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// LowStockReportはnormal以外の商品をcritical→lowの順で返す。
func LowStockReport(products []model.Product) []LowStockEntry {
	out := []LowStockEntry{}
	for _, p := range products {
		if lv := ClassifyStock(p); lv == model.StockLevelCritical {
			out = append(out, LowStockEntry{Product: p, Level: lv})
		}
	}
	for _, p := range products {
		if lv := ClassifyStock(p); lv == model.StockLevelLow {
			out = append(out, LowStockEntry{Product: p, Level: lv})
		}
	}
	return out
}

// その日の0時（ローカル）
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// 週の頭（月曜0時）
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // 日曜は前週の月曜まで戻す
	}
	return d.AddDate(0, 0, -offset)
}

// 月の頭（1日0時）
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Summaryは今日・今週・今月の集計と売れ筋、発注リストをまとめて返す。
// 窓の境界はnowから1回だけ計算する。
func (u *ReportUsecase) Summary(ctx context.Context, now time.Time) (SummaryOutput, error) {
	sales, err := u.sales.List(ctx)
	if err != nil {
		return SummaryOutput{}, NewStorageError(err)
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return SummaryOutput{}, NewStorageError(err)
	}

	return SummaryOutput{
		Today:       CalcWindowStats(sales, StartOfDay(now)),
		Week:        CalcWindowStats(sales, StartOfWeek(now)),
		Month:       CalcWindowStats(sales, StartOfMonth(now)),
		TopProducts: TopProducts(sales, 10),
		LowStock:    LowStockReport(products),
	}, nil
}

// 販売台帳の一覧（新しい順）
func (u *ReportUsecase) ListSales(ctx context.Context) ([]model.Sale, error) {
	sales, err := u.sales.List(ctx)
	if err != nil {
		return nil, NewStorageError(err)
	}
	return sales, nil
}

// 発注リストだけ欲しいとき用
func (u *ReportUsecase) LowStock(ctx context.Context) ([]LowStockEntry, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, NewStorageError(err)
	}
	return LowStockReport(products), nil
}
