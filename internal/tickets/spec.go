//-------------------------------------------------------------------------
//
// ticketgen - train ticket seed data generator
//
// Copyright (c) 2025 - 2026, Railtest Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package tickets synthesizes the train-ticket listing dataset.
package tickets

import (
	"time"

	"github.com/railtest/ticketgen/internal/datagen"
)

// PriceQuantile is the quantile splitting each tier's price range into low
// and high partitions.
const PriceQuantile = 0.7

// HighPriceProb is the probability that a price is drawn from the high
// partition.
const HighPriceProb = 0.3

// CategorySpec describes one train category: its label, trip duration bound
// in hours, and how many records to synthesize for it.
type CategorySpec struct {
	Label    string
	MinHours int
	MaxHours int
	Count    int
}

// TierSpec describes one seat tier: its label, price distribution, the
// inclusive valid price range, and the precomputed quantile threshold
// splitting that range into low- and high-price partitions.
type TierSpec struct {
	Label     string
	Dist      datagen.Distribution
	Min       float64
	Max       float64
	Threshold float64
}

// DateWindow is an inclusive run of calendar days starting at Start.
type DateWindow struct {
	Start time.Time
	Days  int
}

// NewDateWindow returns a window of days beginning at start, truncated to
// midnight UTC.
func NewDateWindow(start time.Time, days int) DateWindow {
	y, m, d := start.Date()
	return DateWindow{
		Start: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Days:  days,
	}
}

// Date returns the i-th day of the window.
func (w DateWindow) Date(i int) time.Time {
	return w.Start.AddDate(0, 0, i)
}

// DefaultCategories returns the four standard train categories with the
// total record target split evenly among them.
func DefaultCategories(totalRecords int) []CategorySpec {
	per := totalRecords / 4
	return []CategorySpec{
		{Label: "G", MinHours: 4, MaxHours: 6, Count: per},
		{Label: "D", MinHours: 5, MaxHours: 7, Count: per},
		{Label: "K", MinHours: 12, MaxHours: 15, Count: per},
		{Label: "Z", MinHours: 10, MaxHours: 12, Count: per},
	}
}

// DefaultTiers returns the standard seat tiers with quantile thresholds
// precomputed from f. Standard deviations follow the (max-min)/4 rule of
// thumb relative to each tier's range.
func DefaultTiers(f *datagen.Faker) []TierSpec {
	tiers := []TierSpec{
		{Label: "一等座", Dist: datagen.Normal(900, 250), Min: 500, Max: 1500},
		{Label: "二等座", Dist: datagen.Normal(550, 125), Min: 300, Max: 800},
		{Label: "硬卧", Dist: datagen.Uniform(400, 1000), Min: 400, Max: 1000},
	}
	for i := range tiers {
		tiers[i].Threshold = datagen.QuantileThreshold(f, tiers[i].Dist, PriceQuantile)
	}
	return tiers
}
