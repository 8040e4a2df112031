// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol represents an instrument whose history is ingested.
// Code is the provider-facing identifier (ticker symbol or currency pair);
// IsActive controls whether the instrument participates in ingestion runs.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
