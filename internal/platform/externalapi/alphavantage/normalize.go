package alphavantage

import (
	"fmt"
	"strconv"
	"time"

	"stock_history/internal/feature/bars/domain/entity"
	"stock_history/internal/platform/externalapi/alphavantage/dto"
)

// timestampLayout はAlpha Vantageのタイムスタンプ形式です。
// プロバイダは取引所ローカルの壁時計時刻を返すため、UTCとして解釈して保存します。
const timestampLayout = "2006-01-02 15:04:05"

// normalizeObservation は1つの観測値をdomain.Barへ変換する純粋関数です。
// タイムスタンプまたは数値フィールドが不正な場合はエラーを返し、
// 呼び出し側がその観測値だけを破棄できるようにします。
func normalizeObservation(symbol, timestamp string, obs dto.Observation) (entity.Bar, error) {
	// タイムスタンプをパース
	tm, err := time.ParseInLocation(timestampLayout, timestamp, time.UTC)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse timestamp %q: %w", timestamp, err)
	}
	// 始値をパース
	o, err := strconv.ParseFloat(obs.Open, 64)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse open %q: %w", obs.Open, err)
	}
	// 高値をパース
	h, err := strconv.ParseFloat(obs.High, 64)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse high %q: %w", obs.High, err)
	}
	// 安値をパース
	l, err := strconv.ParseFloat(obs.Low, 64)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse low %q: %w", obs.Low, err)
	}
	// 終値をパース
	c, err := strconv.ParseFloat(obs.Close, 64)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse close %q: %w", obs.Close, err)
	}
	// 出来高をパース（FXレスポンスには出来高が無いため空文字は0として扱う）
	var vol int64
	if obs.Volume != "" {
		vol, err = strconv.ParseInt(obs.Volume, 10, 64)
		if err != nil {
			return entity.Bar{}, fmt.Errorf("parse volume %q: %w", obs.Volume, err)
		}
	}

	// ドメインエンティティに変換
	return entity.Bar{
		Symbol: symbol,
		Time:   tm,
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: vol,
	}, nil
}
