package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// runBatch processes every configured input in order and returns the process
// exit status: 0 when every input succeeded, 1 when any produced a hard
// failure. A failing input never aborts the batch; the remaining inputs are
// still processed. stdin is consumed for the implicit no-path input and for
// an explicit "-" path.
func runBatch(cfg Config, det Detector, stdin io.Reader, stdout, stderr io.Writer) int {
	paths := cfg.Paths
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	out := bufio.NewWriter(stdout)

	var stats RunStats
	failed := false
	for _, path := range paths {
		outcome := processInput(cfg, det, path, stdin, stderr)
		stats.Add(outcome)
		if outcome.Err != nil {
			failed = true
		}
		if err := emitOutcome(cfg, outcome, out, stderr); err != nil {
			fmt.Fprintf(stderr, "detat: %v\n", err)
			return 1
		}
	}

	if cfg.Stat && !cfg.JSON {
		writeStats(out, &stats)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "detat: %v\n", err)
		return 1
	}
	if failed {
		return 1
	}
	return 0
}

// processInput runs the per-input pipeline: read the whole buffer, detect its
// encoding, classify binary content, apply the confidence policy, and decode.
// Diagnostics go to stderr, never to the concatenated output.
func processInput(cfg Config, det Detector, path string, stdin io.Reader, stderr io.Writer) Outcome {
	o := Outcome{Path: path}

	data, err := readInput(path, stdin)
	if err != nil {
		o.Err = ioError(err)
		return o
	}
	o.Metadata.ReadBytes = len(data)
	if len(data) == 0 {
		// Nothing to detect; an empty input is a successful no-op.
		return o
	}

	d := det.Detect(data)
	if d.Binary {
		if !cfg.AllowBinary {
			o.Err = binaryRejectedError()
			return o
		}
		// Pass-through: raw bytes, no detection metadata.
		o.Content = data
		return o
	}
	o.Metadata.Chardet = d
	debugf(stderr, "predicted: %s, confidence: %v, language: %s", d.Charset, d.Confidence, d.Language)

	label, fallbacked, err := resolveEncoding(d, cfg.ConfidenceMin, cfg.FallbackEncoding)
	if err != nil {
		o.Err = err
		return o
	}
	enc, name, ok := lookupEncoding(label)
	if !ok {
		o.Err = noSuchEncodingError(label, d.Charset)
		return o
	}
	o.Metadata.Encoding = name
	o.Metadata.Fallbacked = fallbacked

	// Stat mode reports detection and resolution only; bytes are not decoded.
	if cfg.Stat {
		return o
	}

	text, err := decodeText(data, enc, name, cfg.Trap)
	if err != nil {
		o.Err = err
		return o
	}
	o.Content = []byte(text)
	return o
}

// readInput loads one input fully into memory. "" and "-" mean stdin.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if isStdin(path) {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func isStdin(path string) bool {
	return path == "" || path == "-"
}

// debugEnabled gates per-input detection diagnostics, in the spirit of a
// log-level env var: set DETAT_LOG to any value to see them on stderr.
var debugEnabled = os.Getenv("DETAT_LOG") != ""

// debugf writes a diagnostic line to the batch's stderr writer when
// DETAT_LOG is set. Plain-mode stdout must stay byte-exact, so diagnostics
// never go there.
func debugf(w io.Writer, format string, args ...any) {
	if !debugEnabled {
		return
	}
	fmt.Fprintf(w, "detat: "+format+"\n", args...)
}
