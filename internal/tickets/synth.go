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

	"github.com/railtest/ticketgen/internal/datagen"
	"github.com/railtest/ticketgen/internal/logging"
)

// Options holds synthesis parameters that are not part of the category or
// tier specifications.
type Options struct {
	StockMin      int
	StockMax      int
	FromStation   string
	ToStation     string
	HighPriceProb float64
}

// Synthesizer generates ticket records for a set of category and tier
// specifications over a date window.
type Synthesizer struct {
	faker      *datagen.Faker
	sampler    *datagen.Sampler
	categories []CategorySpec
	tiers      []TierSpec
	window     DateWindow
	opts       Options
}

// NewSynthesizer creates a Synthesizer. The window must hold at least one
// distinct sold-out date per category.
func NewSynthesizer(f *datagen.Faker, categories []CategorySpec, tiers []TierSpec,
	window DateWindow, opts Options) (*Synthesizer, error) {

	if len(categories) == 0 {
		return nil, fmt.Errorf("at least one category is required")
	}
	if len(tiers) == 0 {
		return nil, fmt.Errorf("at least one tier is required")
	}
	if window.Days < len(categories) {
		return nil, fmt.Errorf(
			"date window of %d days cannot hold %d distinct sold-out dates",
			window.Days, len(categories))
	}
	if opts.StockMin < 0 || opts.StockMax < opts.StockMin {
		return nil, fmt.Errorf("invalid stock range [%d, %d]", opts.StockMin, opts.StockMax)
	}
	if opts.HighPriceProb < 0 || opts.HighPriceProb > 1 {
		return nil, fmt.Errorf("high price probability %f outside [0, 1]", opts.HighPriceProb)
	}

	return &Synthesizer{
		faker:      f,
		sampler:    datagen.NewSampler(f),
		categories: categories,
		tiers:      tiers,
		window:     window,
		opts:       opts,
	}, nil
}

// Generate synthesizes the full dataset in category-major order: all records
// of one category before the next, each category contributing exactly its
// configured count.
func (s *Synthesizer) Generate() *Dataset {
	assigned := s.assignSoldOutDates()

	// pending entries are consumed on first match so at most one record
	// per category is marked sold-out.
	pending := make(map[string]time.Time, len(assigned))
	for label, date := range assigned {
		pending[label] = date
	}

	total := 0
	for _, c := range s.categories {
		total += c.Count
	}

	records := make([]Record, 0, total)
	for _, cat := range s.categories {
		for i := 0; i < cat.Count; i++ {
			records = append(records, s.record(cat, pending))
		}
	}

	logging.Debug().
		Int("records", len(records)).
		Int("categories", len(s.categories)).
		Msg("Dataset synthesized")

	return &Dataset{Records: records, SoldOutDates: assigned}
}

// assignSoldOutDates picks one distinct date per category, without
// replacement, from the window.
func (s *Synthesizer) assignSoldOutDates() map[string]time.Time {
	perm := s.faker.Perm(s.window.Days)
	dates := make(map[string]time.Time, len(s.categories))
	for i, cat := range s.categories {
		dates[cat.Label] = s.window.Date(perm[i])
	}
	return dates
}

func (s *Synthesizer) record(cat CategorySpec, pending map[string]time.Time) Record {
	trainNo := fmt.Sprintf("%s%d", cat.Label, s.faker.Int(1, 999))

	date := s.window.Date(s.faker.Int(0, s.window.Days-1))
	departure := time.Date(date.Year(), date.Month(), date.Day(),
		s.faker.Int(6, 22), s.faker.Int(0, 59), 0, 0, time.UTC)

	durationMinutes := s.faker.Int(cat.MinHours*60, cat.MaxHours*60)
	arrival := departure.Add(time.Duration(durationMinutes) * time.Minute)
	sameDay := arrival.Day() == departure.Day()

	soldOut := false
	if assigned, ok := pending[cat.Label]; ok && assigned.Equal(date) {
		soldOut = true
		delete(pending, cat.Label)
	}

	seats := make([]Seat, 0, len(s.tiers))
	for _, tier := range s.tiers {
		stock := 0
		if !soldOut {
			stock = s.faker.Int(s.opts.StockMin, s.opts.StockMax)
		}
		price := int(s.sampler.GatedSample(
			tier.Dist, tier.Min, tier.Max, tier.Threshold, s.opts.HighPriceProb))
		seats = append(seats, Seat{Type: tier.Label, Stock: stock, Price: price})
	}

	return Record{
		TrainNo:         trainNo,
		TrainType:       cat.Label,
		FromStation:     s.opts.FromStation,
		ToStation:       s.opts.ToStation,
		Departure:       departure,
		DurationMinutes: durationMinutes,
		Arrival:         arrival,
		SameDay:         sameDay,
		Seats:           seats,
	}
}
