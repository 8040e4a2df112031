package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_history/internal/feature/bars/domain/entity"
	"stock_history/internal/feature/bars/usecase"
)

type barMySQL struct {
	db *gorm.DB
}

var _ usecase.BarRepository = (*barMySQL)(nil)

func NewBarRepository(db *gorm.DB) *barMySQL {
	return &barMySQL{db: db}
}

type BarModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:bar_sym_time,priority:1"`
	Time   time.Time `gorm:"not null;uniqueIndex:bar_sym_time,priority:2"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume int64   `gorm:"not null;default:0"`
}

func (BarModel) TableName() string {
	return "bars"
}

func toModel(e entity.Bar) BarModel {
	return BarModel{
		Symbol: e.Symbol,
		Time:   e.Time,
		Open:   e.Open,
		High:   e.High,
		Low:    e.Low,
		Close:  e.Close,
		Volume: e.Volume,
	}
}

func toEntity(m BarModel) entity.Bar {
	return entity.Bar{
		Symbol: m.Symbol,
		Time:   m.Time,
		Open:   m.Open,
		High:   m.High,
		Low:    m.Low,
		Close:  m.Close,
		Volume: m.Volume,
	}
}

// UpsertBatch inserts the batch, overwriting all price columns when a row
// with the same (symbol, time) already exists. Submitting an identical batch
// again leaves the table unchanged.
func (r *barMySQL) UpsertBatch(ctx context.Context, bars []entity.Bar) error {
	if len(bars) == 0 {
		return nil
	}
	ms := make([]BarModel, 0, len(bars))
	for _, e := range bars {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "time"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&ms).Error
}

func (r *barMySQL) Find(ctx context.Context, symbol string, outputsize int) ([]entity.Bar, error) {
	var rows []BarModel
	q := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("`time` DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Bar, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// ExistsInRange reports whether at least one bar exists for the symbol with
// time in [from, to). Read-only; used as the coverage signal to skip months
// that were already ingested.
func (r *barMySQL) ExistsInRange(ctx context.Context, symbol string, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BarModel{}).
		Where("symbol = ? AND `time` >= ? AND `time` < ?", symbol, from, to).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
