package model

import "time"

// 販売記録。追記専用で、作成後は更新も削除もしない。
// 商品名・単位・価格は販売時点のスナップショットを持つので、
// 商品が後で削除・値上げされても過去の記録は壊れない。
type Sale struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProductID   string    `gorm:"type:varchar(36);not null;index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	Unit        Unit      `gorm:"type:varchar(20);not null" json:"unit"`
	SellPrice   int64     `gorm:"not null" json:"sell_price"`
	CostPrice   int64     `gorm:"not null" json:"cost_price"`
	Total       int64     `gorm:"not null" json:"total"`
	Profit      int64     `gorm:"not null" json:"profit"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
}
