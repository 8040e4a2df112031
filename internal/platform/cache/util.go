package cache

import (
	"time"
)

// TimeUntilNextMidnightET は次の午前0時（米国東部時間）までの期間を返します。
// 履歴データは取引日ごとにしか増えないため、キャッシュのTTLとして使います。
func TimeUntilNextMidnightET() time.Duration {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Now().In(loc)

	// 次の午前0時を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).Add(24 * time.Hour)

	return next.Sub(now)
}
