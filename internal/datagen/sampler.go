//-------------------------------------------------------------------------
//
// ticketgen - train ticket seed data generator
//
// Copyright (c) 2025 - 2026, Railtest Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import "sort"

// DistKind identifies the shape of a value distribution.
type DistKind int

const (
	// DistNormal draws from a normal distribution with Mean and StdDev.
	DistNormal DistKind = iota
	// DistUniform draws uniformly from [Low, High].
	DistUniform
)

// Distribution describes how candidate values are drawn.
type Distribution struct {
	Kind   DistKind
	Mean   float64
	StdDev float64
	Low    float64
	High   float64
}

// Normal returns a normal distribution with the given mean and standard
// deviation.
func Normal(mean, stddev float64) Distribution {
	return Distribution{Kind: DistNormal, Mean: mean, StdDev: stddev}
}

// Uniform returns a uniform distribution over [low, high].
func Uniform(low, high float64) Distribution {
	return Distribution{Kind: DistUniform, Low: low, High: high}
}

func (d Distribution) draw(f *Faker) float64 {
	switch d.Kind {
	case DistNormal:
		return f.NormFloat64()*d.StdDev + d.Mean
	default:
		return f.Float64(d.Low, d.High)
	}
}

const (
	// maxSampleAttempts bounds the rejection loop. A window the
	// distribution effectively never reaches falls back to a clamped
	// value instead of spinning forever.
	maxSampleAttempts = 10000

	// thresholdDraws is the sample size for empirical quantile estimation.
	thresholdDraws = 10000
)

// Sampler produces values from a distribution constrained to a numeric window.
type Sampler struct {
	f *Faker
}

// NewSampler creates a Sampler drawing randomness from f.
func NewSampler(f *Faker) *Sampler {
	return &Sampler{f: f}
}

// SampleIn draws candidates from d until one lands inside the inclusive
// window [lo, hi] and returns it. After maxSampleAttempts rejections the
// last candidate is clamped to the nearest window bound.
func (s *Sampler) SampleIn(d Distribution, lo, hi float64) float64 {
	var v float64
	for i := 0; i < maxSampleAttempts; i++ {
		v = d.draw(s.f)
		if v >= lo && v <= hi {
			return v
		}
	}
	if v < lo {
		return lo
	}
	return hi
}

// GatedSample draws a value from d restricted to one of two partitions of
// [min, max]: with probability highProb the high partition [threshold, max],
// otherwise the low partition [min, threshold].
func (s *Sampler) GatedSample(d Distribution, min, max, threshold, highProb float64) float64 {
	if s.f.Float64(0, 1) < highProb {
		return s.SampleIn(d, threshold, max)
	}
	return s.SampleIn(d, min, threshold)
}

// QuantileThreshold returns the value at quantile q of distribution d.
// Uniform distributions are solved analytically; others are estimated from
// a sorted sample of thresholdDraws draws (nearest-rank).
func QuantileThreshold(f *Faker, d Distribution, q float64) float64 {
	if d.Kind == DistUniform {
		return d.Low + q*(d.High-d.Low)
	}

	draws := make([]float64, thresholdDraws)
	for i := range draws {
		draws[i] = d.draw(f)
	}
	sort.Float64s(draws)

	idx := int(q * float64(len(draws)))
	if idx >= len(draws) {
		idx = len(draws) - 1
	}
	return draws[idx]
}
