package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// emitOutcome renders one outcome according to the configured mode. In plain
// mode failures go to stderr so stdout stays a clean concatenation; in JSON
// mode failures live inside the per-input record so the stream stays
// machine-parseable. Stat mode emits nothing per input.
func emitOutcome(cfg Config, o Outcome, out io.Writer, stderr io.Writer) error {
	if cfg.JSON {
		return writeRecord(cfg, o, out)
	}
	if o.Err != nil {
		fmt.Fprintf(stderr, "detat: %s: %v\n", displayPath(o.Path), o.Err)
		return nil
	}
	if cfg.Stat {
		return nil
	}
	_, err := out.Write(o.Content)
	return err
}

// writeRecord emits one JSON Lines record. Content is embedded only for
// successfully decoded text; binary pass-through bytes and stat-only runs
// leave it null.
func writeRecord(cfg Config, o Outcome, w io.Writer) error {
	rec := Record{Metadata: o.Metadata}
	if !isStdin(o.Path) {
		p := o.Path
		rec.Path = &p
	}
	if o.Err != nil {
		rec.Error = o.Err.Error()
	} else if !cfg.Stat && o.Content != nil && o.Metadata.Encoding != "" {
		s := string(o.Content)
		rec.Content = &s
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// writeStats renders the aggregate summary for --stat runs.
func writeStats(w io.Writer, s *RunStats) {
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Inputs: %d\n", s.Inputs)
	fmt.Fprintf(w, "Read bytes: %d\n", s.ReadBytes)

	if len(s.ByEncoding) > 0 {
		fmt.Fprintln(w, "Encodings:")
		names := make([]string, 0, len(s.ByEncoding))
		for name := range s.ByEncoding {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d\n", name, s.ByEncoding[name])
		}
	}

	fmt.Fprintf(w, "Fallbacks: %d\n", s.Fallbacked)
	fmt.Fprintf(w, "Binary: %d\n", s.Binary)
	fmt.Fprintf(w, "Empty: %d\n", s.Empty)
	fmt.Fprintf(w, "Failures: %d\n", s.Failed)
}

// displayPath names an input in human-readable diagnostics.
func displayPath(path string) string {
	if isStdin(path) {
		return "-"
	}
	return path
}
