package main

// Detection is the detector's verdict for one input buffer.
type Detection struct {
	Charset    string  `json:"charset"`
	Confidence float64 `json:"confidence"` // normalized to [0,1]
	Language   string  `json:"language"`
	Binary     bool    `json:"-"`
}

// Metadata describes how one input was detected and resolved. The JSON field
// names are the tool's wire format and must stay stable.
type Metadata struct {
	Chardet    Detection `json:"chardet"`
	Encoding   string    `json:"encoding"` // resolved encoding label, "" for binary/empty inputs
	Fallbacked bool      `json:"fallbacked"`
	ReadBytes  int       `json:"read_bytes"`
}

// Outcome is the result of processing a single input. Content holds decoded
// UTF-8 text, or the untouched raw bytes for an allowed binary input.
type Outcome struct {
	Path     string // "-" means standard input
	Metadata Metadata
	Content  []byte
	Err      error
}

// Record is the JSON Lines view of an Outcome, one object per input.
// Path is null for standard input; Content is null for binary inputs,
// failures, and stat-only runs.
type Record struct {
	Path     *string  `json:"path"`
	Metadata Metadata `json:"metadata"`
	Content  *string  `json:"content"`
	Error    string   `json:"error,omitempty"`
}

// Config holds the resolved runtime options for one batch run. It is built
// once in main and passed by value; the processing core keeps no globals.
type Config struct {
	AllowBinary      bool
	JSON             bool
	Stat             bool
	ConfidenceMin    float64
	FallbackEncoding string
	Trap             Trap
	Paths            []string
}

// RunStats aggregates outcomes across a batch for the --stat summary.
type RunStats struct {
	Inputs     int
	ReadBytes  int64
	ByEncoding map[string]int // resolved encoding -> input count
	Fallbacked int
	Binary     int
	Empty      int
	Failed     int
}

// Add folds one outcome into the aggregate counters.
func (s *RunStats) Add(o Outcome) {
	s.Inputs++
	s.ReadBytes += int64(o.Metadata.ReadBytes)

	switch {
	case o.Err != nil:
		s.Failed++
	case o.Metadata.ReadBytes == 0:
		s.Empty++
	case o.Metadata.Encoding == "":
		s.Binary++
	default:
		if s.ByEncoding == nil {
			s.ByEncoding = make(map[string]int)
		}
		s.ByEncoding[o.Metadata.Encoding]++
		if o.Metadata.Fallbacked {
			s.Fallbacked++
		}
	}
}
