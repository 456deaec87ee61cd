//-------------------------------------------------------------------------
//
// ticketgen - train ticket seed data generator
//
// Copyright (c) 2025 - 2026, Railtest Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package report computes aggregate statistics over the synthesized dataset
// and renders the validation report and its markdown documentation.
package report

import (
	"fmt"
	"strings"

	"github.com/railtest/ticketgen/internal/tickets"
)

// PriceSummary holds aggregate price statistics for one seat tier.
type PriceSummary struct {
	Mean int
	Min  int
	Max  int
}

// Stats holds the aggregate view of a generated dataset. Category and tier
// orders follow first appearance in the record sequence.
type Stats struct {
	Total          int
	CategoryOrder  []string
	CategoryCounts map[string]int
	TierOrder      []string
	TierPrices     map[string]PriceSummary
	SoldOut        int
}

// Summarize computes dataset statistics in a single read-only pass.
func Summarize(records []tickets.Record) Stats {
	stats := Stats{
		Total:          len(records),
		CategoryCounts: make(map[string]int),
		TierPrices:     make(map[string]PriceSummary),
	}

	sums := make(map[string]int)
	counts := make(map[string]int)

	for _, r := range records {
		if _, seen := stats.CategoryCounts[r.TrainType]; !seen {
			stats.CategoryOrder = append(stats.CategoryOrder, r.TrainType)
		}
		stats.CategoryCounts[r.TrainType]++

		if r.SoldOut() {
			stats.SoldOut++
		}

		for _, seat := range r.Seats {
			summary, seen := stats.TierPrices[seat.Type]
			if !seen {
				stats.TierOrder = append(stats.TierOrder, seat.Type)
				summary = PriceSummary{Min: seat.Price, Max: seat.Price}
			}
			if seat.Price < summary.Min {
				summary.Min = seat.Price
			}
			if seat.Price > summary.Max {
				summary.Max = seat.Price
			}
			stats.TierPrices[seat.Type] = summary

			sums[seat.Type] += seat.Price
			counts[seat.Type]++
		}
	}

	for tier, sum := range sums {
		summary := stats.TierPrices[tier]
		summary.Mean = sum / counts[tier]
		stats.TierPrices[tier] = summary
	}

	return stats
}

// Render produces the textual validation report.
func (s Stats) Render() string {
	var b strings.Builder

	b.WriteString("--- Data Generation Validation Report ---\n")
	fmt.Fprintf(&b, "Total Records Generated: %d\n", s.Total)

	b.WriteString("\nDistribution by Train Type:\n")
	for _, label := range s.CategoryOrder {
		fmt.Fprintf(&b, "  - %s-Type: %d records\n", label, s.CategoryCounts[label])
	}

	b.WriteString("\nPrice Analysis (Avg / Min / Max):\n")
	for _, tier := range s.TierOrder {
		p := s.TierPrices[tier]
		fmt.Fprintf(&b, "  - %s: %d / %d / %d\n", tier, p.Mean, p.Min, p.Max)
	}

	fmt.Fprintf(&b, "\nSpecial 'No Stock' Cases Found: %d\n", s.SoldOut)

	return b.String()
}

// Meta carries generation parameters echoed into the documentation.
type Meta struct {
	WindowDays    int
	TargetRecords int
	Categories    int
	SQLFile       string
}

// Document renders the markdown documentation file: a fixed narrative of
// the generation algorithm with the validation report embedded.
func Document(stats Stats, meta Meta) string {
	var b strings.Builder

	b.WriteString("# Data Generation Documentation\n\n")

	b.WriteString("## 1. Algorithm Description\n\n")
	b.WriteString("The ticketgen tool created this test dataset. The process is as follows:\n\n")
	b.WriteString("- **Data Structure**: A denormalized, flat structure stored in a temporary table " +
		"`temp_ticket_data`, one row per listing. This mirrors the expected API query result " +
		"for maximum testing efficiency.\n")
	fmt.Fprintf(&b, "- **Date & Volume**: Data covers a %d-day period, targeting a total of ~%d records.\n",
		meta.WindowDays, meta.TargetRecords)
	fmt.Fprintf(&b, "- **Train Generation**: For each of the %d train types, a fixed number of records "+
		"is created and distributed randomly across the date range.\n", meta.Categories)
	b.WriteString("- **Time Calculation**: Departure times are randomized between 06:00-23:00. " +
		"Durations are randomized within each train type's bound. Arrival times are derived " +
		"from these values, correctly handling overnight trips.\n")
	b.WriteString("- **Pricing Logic**:\n")
	b.WriteString("    - Prices for 一等座 and 二等座 follow a **Normal Distribution** to simulate " +
		"realistic clustering around a mean value.\n")
	b.WriteString("    - Prices for 硬卧 follow a **Uniform Distribution**.\n")
	b.WriteString("    - A **Quantile-based rule** is enforced: each price has a 30% chance of " +
		"landing above the tier's 70th percentile and a 70% chance of landing below it, " +
		"ensuring price diversity.\n")
	fmt.Fprintf(&b, "- **Special Cases**: One \"no stock\" train per train type is placed on a "+
		"unique, random date (%d types in total).\n", meta.Categories)

	b.WriteString("\n## 2. Data Validation Report\n\n")
	b.WriteString("```\n")
	b.WriteString(stats.Render())
	b.WriteString("```\n")

	b.WriteString("\n## 3. Deliverables\n\n")
	fmt.Fprintf(&b, "- **SQL Script**: `%s` - a transactional seed script with batched inserts.\n",
		meta.SQLFile)
	b.WriteString("- **Validation Report**: this document; re-run `ticketgen generate` to regenerate both files.\n")

	return b.String()
}
