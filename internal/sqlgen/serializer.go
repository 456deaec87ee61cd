//-------------------------------------------------------------------------
//
// ticketgen - train ticket seed data generator
//
// Copyright (c) 2025 - 2026, Railtest Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sqlgen renders the synthesized dataset as a transactional SQL
// seed script.
package sqlgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/railtest/ticketgen/internal/tickets"
)

// Dialect selects the SQL flavor of the generated script.
type Dialect string

const (
	// DialectMySQL targets MySQL 8.0.
	DialectMySQL Dialect = "mysql"
	// DialectSQLite targets SQLite 3.
	DialectSQLite Dialect = "sqlite"
)

// DefaultBatchSize is the number of rows per INSERT statement.
const DefaultBatchSize = 100

// Options configures script generation.
type Options struct {
	Dialect   Dialect
	BatchSize int
}

// Schema SQL for the flat ticket listing table, one row per record.
const mysqlSchemaSQL = `DROP TABLE IF EXISTS temp_ticket_data;

CREATE TABLE temp_ticket_data (
  id INT AUTO_INCREMENT PRIMARY KEY,
  train_no VARCHAR(10) NOT NULL,
  train_type CHAR(1) NOT NULL,
  from_station VARCHAR(50) NOT NULL,
  to_station VARCHAR(50) NOT NULL,
  departure_date DATE NOT NULL,
  departure_time TIME NOT NULL,
  arrival_time TIME NOT NULL,
  duration VARCHAR(50) NOT NULL,
  seats_info JSON NOT NULL,
  INDEX idx_departure_date (departure_date),
  INDEX idx_train_type (train_type)
);`

// SQLite has no inline INDEX clause and stores the seats JSON as TEXT.
const sqliteSchemaSQL = `DROP TABLE IF EXISTS temp_ticket_data;

CREATE TABLE temp_ticket_data (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  train_no TEXT NOT NULL,
  train_type TEXT NOT NULL,
  from_station TEXT NOT NULL,
  to_station TEXT NOT NULL,
  departure_date TEXT NOT NULL,
  departure_time TEXT NOT NULL,
  arrival_time TEXT NOT NULL,
  duration TEXT NOT NULL,
  seats_info TEXT NOT NULL
);

CREATE INDEX idx_departure_date ON temp_ticket_data (departure_date);
CREATE INDEX idx_train_type ON temp_ticket_data (train_type);`

const insertColumns = "(train_no, train_type, from_station, to_station, " +
	"departure_date, departure_time, arrival_time, duration, seats_info)"

// Script renders the record sequence into a single all-or-nothing seed
// script with batched INSERT statements. Output is deterministic for a
// given input sequence.
func Script(records []tickets.Record, opts Options) (string, error) {
	var escape func(string) string
	var begin, schema string

	switch opts.Dialect {
	case DialectMySQL:
		escape = escapeMySQL
		begin = "START TRANSACTION;"
		schema = mysqlSchemaSQL
	case DialectSQLite:
		escape = escapeSQLite
		begin = "BEGIN TRANSACTION;"
		schema = sqliteSchemaSQL
	default:
		return "", fmt.Errorf("unknown dialect: %q", opts.Dialect)
	}

	batchSize := opts.BatchSize
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	var b strings.Builder
	b.WriteString("-- train ticket seed data, generated by ticketgen --\n")
	fmt.Fprintf(&b, "-- dialect: %s --\n\n", opts.Dialect)
	b.WriteString(begin)
	b.WriteString("\n\n")
	b.WriteString(schema)
	b.WriteString("\n\n")

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		b.WriteString("INSERT INTO temp_ticket_data ")
		b.WriteString(insertColumns)
		b.WriteString(" VALUES\n")

		for i, r := range records[start:end] {
			row, err := renderRow(r, escape)
			if err != nil {
				return "", err
			}
			b.WriteString(row)
			if i < end-start-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString(";\n\n")
			}
		}
	}

	b.WriteString("COMMIT;\n")
	return b.String(), nil
}

func renderRow(r tickets.Record, escape func(string) string) (string, error) {
	seats, err := json.Marshal(r.Seats)
	if err != nil {
		return "", fmt.Errorf("failed to serialize seats for %s: %w", r.TrainNo, err)
	}

	return fmt.Sprintf("('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')",
		escape(r.TrainNo),
		escape(r.TrainType),
		escape(r.FromStation),
		escape(r.ToStation),
		r.Departure.Format("2006-01-02"),
		r.Departure.Format("15:04"),
		r.Arrival.Format("15:04"),
		escape(r.DurationText()),
		escape(string(seats)),
	), nil
}

// escapeMySQL escapes a value for inline single-quoted embedding under
// MySQL's default backslash-escape mode. Backslashes double first so the
// quote escaping cannot be re-escaped.
func escapeMySQL(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", "''")
}

// escapeSQLite escapes a value for inline single-quoted embedding. SQLite
// treats backslashes literally, so only quotes double.
func escapeSQLite(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
