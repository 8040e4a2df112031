// Package di provides dependency injection factories for creating application components.
package di

import (
	"stock_history/internal/platform/externalapi/alphavantage"
	infrahttp "stock_history/internal/platform/http"
)

// NewMarket creates a fully configured AlphaVantageMarket with HTTP client.
func NewMarket() *alphavantage.AlphaVantageMarket {
	cfg := alphavantage.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return alphavantage.NewAlphaVantageMarket(cfg, httpClient)
}
