// Package entity defines the domain models for the bars feature.
package entity

import "time"

// Bar represents one OHLCV (Open, High, Low, Close, Volume) observation
// for an instrument at a specific instant.
//
// Time carries the wall-clock timestamp exactly as the provider reports it
// (exchange-local for equities), interpreted in UTC. The pair (Symbol, Time)
// uniquely identifies a bar; the store enforces this with a unique index.
type Bar struct {
	Symbol string    // Ticker symbol (e.g., "AAPL") or currency pair (e.g., "EUR/USD")
	Time   time.Time // Timestamp for the start of this bar period
	Open   float64   // Opening price
	High   float64   // Highest price during this period
	Low    float64   // Lowest price during this period
	Close  float64   // Closing price
	Volume int64     // Traded volume (0 for currency pairs)
}
