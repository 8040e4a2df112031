// Package dto defines data transfer objects for Alpha Vantage API responses.
package dto

// Observation mirrors one entry of an Alpha Vantage time-series mapping.
// Equity responses carry all five fields; FX responses omit "5. volume".
type Observation struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}
