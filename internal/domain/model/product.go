package model

import "time"

// 販売単位
type Unit string

const (
	UnitPiece    Unit = "piece"
	UnitKilogram Unit = "kilogram"
	UnitLiter    Unit = "liter"
	UnitBox      Unit = "box"
)

// 単位が列挙のどれかか
func (u Unit) Valid() bool {
	switch u {
	case UnitPiece, UnitKilogram, UnitLiter, UnitBox:
		return true
	}
	return false
}

// 在庫レベル（normal / low / critical）
type StockLevel string

const (
	StockLevelNormal   StockLevel = "normal"
	StockLevelLow      StockLevel = "low"
	StockLevelCritical StockLevel = "critical"
)

// カテゴリ未指定ならこれ
const DefaultCategory = "General"

// 発注基準のデフォルト
const DefaultLowStockLimit int64 = 5

// 商品。Stockは0未満にならない。
type Product struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Category      string    `gorm:"type:varchar(100);not null;default:'General'" json:"category"`
	Barcode       string    `gorm:"type:varchar(64)" json:"barcode,omitempty"`
	Unit          Unit      `gorm:"type:varchar(20);not null" json:"unit"`
	CostPrice     int64     `gorm:"not null" json:"cost_price"`
	SellPrice     int64     `gorm:"not null" json:"sell_price"`
	Stock         int64     `gorm:"not null;default:0" json:"stock"`
	LowStockLimit int64     `gorm:"not null;default:5" json:"low_stock_limit"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
