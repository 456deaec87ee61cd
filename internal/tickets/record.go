//-------------------------------------------------------------------------
//
// ticketgen - train ticket seed data generator
//
// Copyright (c) 2025 - 2026, Railtest Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package tickets

import (
	"fmt"
	"time"
)

// Seat is one price-tier sub-record of a ticket listing. The JSON field
// names match the seats_info column consumed by the API under test.
type Seat struct {
	Type  string `json:"type"`
	Stock int    `json:"stock"`
	Price int    `json:"price"`
}

// Record is one synthesized ticket listing.
type Record struct {
	TrainNo     string
	TrainType   string
	FromStation string
	ToStation   string

	// Departure carries both the departure date and time of day.
	Departure       time.Time
	DurationMinutes int
	Arrival         time.Time

	// SameDay is true when the arrival falls on the departure's calendar
	// day.
	SameDay bool

	Seats []Seat
}

// DurationText renders the trip duration as localized hour/minute text,
// e.g. "5小时20分钟".
func (r Record) DurationText() string {
	return fmt.Sprintf("%d小时%d分钟", r.DurationMinutes/60, r.DurationMinutes%60)
}

// SoldOut reports whether every seat tier of the record has zero stock.
func (r Record) SoldOut() bool {
	if len(r.Seats) == 0 {
		return false
	}
	for _, s := range r.Seats {
		if s.Stock != 0 {
			return false
		}
	}
	return true
}

// Dataset is the complete synthesized record collection together with the
// sold-out date assigned to each category. A category may end up with no
// sold-out record when none of its records landed on the assigned date.
type Dataset struct {
	Records      []Record
	SoldOutDates map[string]time.Time
}
