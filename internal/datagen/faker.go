//-------------------------------------------------------------------------
//
// ticketgen - train ticket seed data generator
//
// Copyright (c) 2025 - 2026, Railtest Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides randomized value generation for ticketgen.
package datagen

import (
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides random primitives using gofakeit. gofakeit exposes its
// randomness as a bare rand.Source, so it is wrapped once in a *rand.Rand
// for the draws gofakeit has no helper for; both views consume the same
// source, keeping seeded runs reproducible.
type Faker struct {
	faker *gofakeit.Faker
	r     *rand.Rand
}

func newFaker(g *gofakeit.Faker) *Faker {
	return &Faker{faker: g, r: rand.New(g.Rand)}
}

// NewFaker creates a new Faker with a time-derived seed.
func NewFaker() *Faker {
	return newFaker(gofakeit.New(uint64(time.Now().UnixNano())))
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return newFaker(gofakeit.New(seed))
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// NormFloat64 generates a normally distributed float64 with mean 0 and
// standard deviation 1.
func (f *Faker) NormFloat64() float64 {
	return f.r.NormFloat64()
}

// Perm returns a random permutation of the integers [0, n).
func (f *Faker) Perm(n int) []int {
	return f.r.Perm(n)
}
