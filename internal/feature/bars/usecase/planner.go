package usecase

import (
	"iter"
	"time"

	"stock_history/internal/feature/bars/domain/entity"
)

// PlanUnits は[start, end]の期間を対象としたフェッチユニットの遅延シーケンスを返します。
// 順序は（カレンダー月の昇順、銘柄はリスト順）です。シーケンスは何度でも
// range で走査でき、走査のたびに先頭から再生成されます。
// start > end の場合は空のシーケンスを返します。
func PlanUnits(start, end time.Time, symbols []string, interval string) iter.Seq[entity.FetchUnit] {
	return func(yield func(entity.FetchUnit) bool) {
		for cur := start; !cur.After(end); cur = nextMonth(cur) {
			month := time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, time.UTC)
			for _, s := range symbols {
				if !yield(entity.FetchUnit{Symbol: s, Month: month, Interval: interval}) {
					return
				}
			}
		}
	}
}

// nextMonth はtをちょうど1カレンダー月進めます。進めた先の日は
// min(元の日, 翌月の末日)になります（例: 1月31日 → 2月28日、うるう年は29日）。
// 「31日加算」のような近似は複数年の範囲で月をずらすため使いません。
func nextMonth(t time.Time) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	if last := daysInMonth(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// daysInMonth はtが属する月の日数を返します。
func daysInMonth(t time.Time) int {
	// day 0 of the following month normalizes to the last day of t's month
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
