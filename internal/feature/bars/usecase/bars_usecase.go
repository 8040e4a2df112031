// Package usecase はOHLCVバーの取得・永続化に関するビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"stock_history/internal/feature/bars/domain/entity"
)

const (
	// DefaultOutputSize はバー取得クエリのデフォルト返却件数です。
	DefaultOutputSize = 200
	// MaxOutputSize はバーの最大返却件数です。
	MaxOutputSize = 5000
)

// BarRepository はバーデータの永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BarRepository interface {
	// Find は指定銘柄のバーを新しい順に最大outputsize件返します。
	Find(ctx context.Context, symbol string, outputsize int) ([]entity.Bar, error)
	// UpsertBatch は(symbol, time)をキーとしてバーを一括で挿入または上書きします。
	UpsertBatch(ctx context.Context, bars []entity.Bar) error
	// ExistsInRange は[from, to)の範囲に指定銘柄のバーが1件以上存在するかを返します。
	ExistsInRange(ctx context.Context, symbol string, from, to time.Time) (bool, error)
}

// barsUsecase はバーデータの読み取りユースケースを定義します。
type barsUsecase struct {
	bar BarRepository
}

// NewBarsUsecase はbarsUsecaseの新しいインスタンスを生成します。
func NewBarsUsecase(bar BarRepository) *barsUsecase {
	return &barsUsecase{bar: bar}
}

// GetBars は指定された銘柄のバーデータを取得します。
func (bu *barsUsecase) GetBars(ctx context.Context, symbol string, outputsize int) ([]entity.Bar, error) {
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}
	return bu.bar.Find(ctx, symbol, outputsize)
}
