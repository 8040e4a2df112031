package usecase

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"stock_history/internal/feature/bars/domain/entity"
	"stock_history/internal/shared/ratelimiter"
)

// MarketRepository は月単位の時系列データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// GetIntradayMonth は1カレンダー月分の時系列データを返します。
	// データが存在しない月（休場など）は空のスライスとnilエラーを返します。
	GetIntradayMonth(ctx context.Context, symbol, interval string, month time.Time) ([]entity.Bar, error)
}

// Report は1回のインジェスト実行の結果サマリです。各ユニットは
// いずれか1つのカウンタに計上されます。
type Report struct {
	Planned  int // 計画されたユニット数
	Skipped  int // 既にカバー済みでスキップされたユニット数
	Ingested int // 取得・保存が完了したユニット数
	Empty    int // 取得は成功したがデータが空だったユニット数
	Failed   int // 取得または保存に失敗したユニット数
}

// IngestUsecase は外部APIから月単位の履歴データを取得し、データベースに
// 永続化するユースケースを定義します。
type IngestUsecase struct {
	market      MarketRepository
	bar         BarRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(market MarketRepository, bar BarRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, bar: bar, rateLimiter: rateLimiter}
}

// ingestOne は1つのフェッチユニットを処理し、保存したバーの件数を返します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, u entity.FetchUnit) (int, error) {
	bars, err := iu.market.GetIntradayMonth(ctx, u.Symbol, u.Interval, u.Month)
	if err != nil {
		return 0, err
	}
	if len(bars) == 0 {
		return 0, nil
	}
	if err := iu.bar.UpsertBatch(ctx, bars); err != nil {
		return 0, err
	}
	return len(bars), nil
}

// Run は計画された全ユニットを順に処理し、実行サマリを返します。
// 各ユニットの処理は: カバレッジ確認 → レートリミット待機 → 取得 → 保存。
// 1つのユニットの失敗はログに出力して次のユニットへ進み、実行全体は
// 中断しません。保存は(symbol, time)キーのupsertなので、同じ期間を
// 再実行しても重複レコードは生まれません。
func (iu *IngestUsecase) Run(ctx context.Context, units iter.Seq[entity.FetchUnit]) Report {
	var rep Report
	for u := range units {
		rep.Planned++

		from, to := u.MonthRange()
		covered, err := iu.bar.ExistsInRange(ctx, u.Symbol, from, to)
		if err != nil {
			// 読み取りに失敗してもupsertは冪等なので、取得して問題ない
			slog.Warn("coverage check failed; fetching anyway", "symbol", u.Symbol, "month", u.MonthKey(), "error", err)
		}
		if covered {
			rep.Skipped++
			continue
		}

		iu.rateLimiter.WaitIfNeeded()

		n, err := iu.ingestOne(ctx, u)
		if err != nil {
			// 1つのユニットでエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			slog.Error("failed to ingest month", "symbol", u.Symbol, "month", u.MonthKey(), "error", err)
			rep.Failed++
			continue
		}
		if n == 0 {
			// 休場月などデータが無い月は正常（エラーではない）
			rep.Empty++
			continue
		}
		rep.Ingested++
	}

	slog.Info("ingestion run finished",
		"planned", rep.Planned,
		"skipped", rep.Skipped,
		"ingested", rep.Ingested,
		"empty", rep.Empty,
		"failed", rep.Failed,
	)
	return rep
}
