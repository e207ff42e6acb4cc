package main

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// Trap selects how the decoder handles malformed bytes in the source.
type Trap int

const (
	// TrapStrict fails the input on malformed bytes.
	TrapStrict Trap = iota
	// TrapReplace substitutes U+FFFD for malformed bytes.
	TrapReplace
	// TrapIgnore drops malformed bytes.
	TrapIgnore
)

// ParseTrap parses a trap name from the CLI or config file.
func ParseTrap(s string) (Trap, error) {
	switch strings.ToLower(s) {
	case "strict":
		return TrapStrict, nil
	case "replace":
		return TrapReplace, nil
	case "ignore":
		return TrapIgnore, nil
	default:
		return TrapStrict, fmt.Errorf("invalid decoder trap: %s (use strict, replace, or ignore)", s)
	}
}

func (t Trap) String() string {
	switch t {
	case TrapReplace:
		return "replace"
	case TrapIgnore:
		return "ignore"
	default:
		return "strict"
	}
}

// lookupEncoding resolves a WHATWG encoding label (as reported by the
// detector or supplied via --fallback) to a concrete encoding. The returned
// name is the canonical form of the label.
func lookupEncoding(label string) (encoding.Encoding, string, bool) {
	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, "", false
	}
	return enc, name, true
}

// decodeText converts data from enc to UTF-8, applying the trap policy.
// label is only used in error messages.
//
// x/text decoders never report malformed input as an error; they substitute
// U+FFFD instead. Trap handling therefore works on the substituted runes in
// the output, balanced against the literal U+FFFD sequences the source
// bytes encode themselves.
func decodeText(data []byte, enc encoding.Encoding, label string, trap Trap) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", decodeError(label)
	}
	s := string(out)
	if !strings.ContainsRune(s, utf8.RuneError) {
		return s, nil
	}

	switch trap {
	case TrapReplace:
		return s, nil
	case TrapIgnore:
		return strings.ReplaceAll(s, string(utf8.RuneError), ""), nil
	default:
		if strings.Count(s, string(utf8.RuneError)) <= sourceReplacementCount(data, enc) {
			return s, nil
		}
		return "", decodeError(label)
	}
}

// sourceReplacementCount counts literal encoded U+FFFD sequences in the
// source bytes. Strict mode fails only when the decoded output holds more
// replacement runes than the input itself accounts for, so a genuine U+FFFD
// in the source cannot mask an additional malformed byte.
func sourceReplacementCount(data []byte, enc encoding.Encoding) int {
	encoded, err := enc.NewEncoder().Bytes([]byte(string(utf8.RuneError)))
	if err != nil || len(encoded) == 0 {
		return 0
	}
	return bytes.Count(data, encoded)
}
