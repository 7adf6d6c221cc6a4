package entity

import (
	"time"
)

// Alert 目标币种独立异动记录
type Alert struct {
	Id              int64  `gorm:"primaryKey;autoIncrement"`
	InfluenceSymbol string `gorm:"index"`
	TargetSymbol    string `gorm:"index"`
	InfluencePrice  string
	TargetPrice     string

	IndependentChange string
	WindowElapsed     int64 // 秒
	Commentary        string

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
