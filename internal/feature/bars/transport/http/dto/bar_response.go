// Package dto defines data transfer objects for the bars HTTP API.
package dto

// BarResponse はOHLCVバーのレスポンスDTOです。
type BarResponse struct {
	Time   string  `json:"time"`   // タイムスタンプ（"2006-01-02 15:04:05"）
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
