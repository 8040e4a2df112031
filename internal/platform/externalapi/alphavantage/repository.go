package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"stock_history/internal/feature/bars/domain/entity"
	"stock_history/internal/feature/bars/usecase"
	"stock_history/internal/platform/externalapi/alphavantage/dto"
)

// ErrProvider はAlpha Vantageがリクエストを拒否したことを示します
// （クォータ超過、無効な銘柄、無効なパラメータなど）。診断メッセージで
// ラップされます。同一の実行内では再試行すべきではありません。
var ErrProvider = errors.New("alphavantage rejected request")

// diagnosticKeys はプロバイダが時系列の代わりに返す診断フィールドです。
var diagnosticKeys = []string{"Information", "Error Message", "Note"}

// AlphaVantageMarket はAlpha Vantage外部APIから時系列データを取得するMarketRepository実装です。
type AlphaVantageMarket struct {
	cfg    Config
	client *http.Client
}

// AlphaVantageMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*AlphaVantageMarket)(nil)

// NewAlphaVantageMarket は指定された設定とHTTPクライアントでAlphaVantageMarketの新しいインスタンスを生成します。
func NewAlphaVantageMarket(cfg Config, client *http.Client) *AlphaVantageMarket {
	return &AlphaVantageMarket{cfg: cfg, client: client}
}

// GetIntradayMonth は指定された銘柄の1カレンダー月分のイントラデイ時系列を
// 取得し、タイムスタンプ昇順のdomain.Barスライスとして返します。
//
// 銘柄が"EUR/USD"のような通貨ペアの場合はFX_INTRADAYを、それ以外は
// TIME_SERIES_INTRADAYを使用します。レスポンスは次のように分類されます:
//   - 時系列あり → バーのスライス（不正な観測値は警告ログを出して除外）
//   - 空の時系列 → 空のスライスとnilエラー（休場月など）
//   - 診断フィールド（"Information"など） → ErrProvider
//   - 非2xx／通信障害／不正なJSON → トランスポートエラー
func (a *AlphaVantageMarket) GetIntradayMonth(ctx context.Context, symbol, interval string, month time.Time) ([]entity.Bar, error) {
	q := url.Values{}
	var seriesKey string
	if from, to, ok := splitCurrencyPair(symbol); ok {
		q.Set("function", "FX_INTRADAY")
		q.Set("from_symbol", from)
		q.Set("to_symbol", to)
		seriesKey = fmt.Sprintf("Time Series FX (%s)", interval)
	} else {
		q.Set("function", "TIME_SERIES_INTRADAY")
		q.Set("symbol", symbol)
		seriesKey = fmt.Sprintf("Time Series (%s)", interval)
	}
	// クエリパラメータを追加
	q.Set("interval", interval)
	q.Set("month", month.Format("2006-01"))
	q.Set("outputsize", "full")
	q.Set("apikey", a.cfg.APIKey)

	// URLを生成
	u := fmt.Sprintf("%s?%s", a.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	// トップレベルのキーは動的（"Time Series (60min)"など）なので
	// いったんRawMessageに受ける
	var body map[string]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	// 診断フィールドはプロバイダレベルのエラー
	for _, k := range diagnosticKeys {
		if raw, ok := body[k]; ok {
			var msg string
			_ = json.Unmarshal(raw, &msg)
			return nil, fmt.Errorf("%w: %s", ErrProvider, msg)
		}
	}

	raw, ok := body[seriesKey]
	if !ok {
		return nil, fmt.Errorf("%w: response missing %q", ErrProvider, seriesKey)
	}

	var series map[string]dto.Observation
	if err := json.Unmarshal(raw, &series); err != nil {
		return nil, err
	}

	bars := make([]entity.Bar, 0, len(series))
	for ts, obs := range series {
		b, err := normalizeObservation(symbol, ts, obs)
		if err != nil {
			// 不正な観測値は1件だけ捨て、同じ月の他の観測値は処理を続ける
			slog.Warn("skipping malformed observation", "symbol", symbol, "timestamp", ts, "error", err)
			continue
		}
		bars = append(bars, b)
	}

	// JSONオブジェクトのキー順は保証されないのでタイムスタンプ順に揃える
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// splitCurrencyPair は"EUR/USD"形式の通貨ペアを分解します。
func splitCurrencyPair(symbol string) (from, to string, ok bool) {
	from, to, ok = strings.Cut(symbol, "/")
	if !ok || from == "" || to == "" {
		return "", "", false
	}
	return from, to, true
}
