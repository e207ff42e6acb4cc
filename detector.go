package main

import (
	"bytes"
	"strings"

	"github.com/saintfish/chardet"
)

// Detector guesses the character encoding of a byte buffer. It is an
// interface so the decision policy and batch runner can be exercised with
// synthetic results instead of real detection heuristics.
type Detector interface {
	Detect(data []byte) Detection
}

// detectorFunc adapts a plain function to the Detector interface.
type detectorFunc func(data []byte) Detection

func (f detectorFunc) Detect(data []byte) Detection { return f(data) }

// chardetDetector wraps the saintfish/chardet text detector.
type chardetDetector struct {
	det *chardet.Detector
}

func newChardetDetector() Detector {
	return &chardetDetector{det: chardet.NewTextDetector()}
}

// Detect runs charset detection and normalizes the result: chardet reports
// confidence as an int in 0-100, the rest of the tool works in [0,1].
//
// An input is classified binary when chardet cannot name a charset at all,
// or when it contains NUL bytes under a detected charset that has no
// structural use for them (anything outside the UTF-16/32 families).
func (d *chardetDetector) Detect(data []byte) Detection {
	res, err := d.det.DetectBest(data)
	if err != nil || res.Charset == "" {
		return Detection{Binary: true}
	}

	det := Detection{
		Charset:    res.Charset,
		Confidence: float64(res.Confidence) / 100,
		Language:   res.Language,
	}
	if bytes.IndexByte(data, 0x00) >= 0 && !nulBearingCharset(det.Charset) {
		det.Binary = true
	}
	return det
}

// nulBearingCharset reports whether NUL bytes are expected inside text of the
// given charset.
func nulBearingCharset(charset string) bool {
	up := strings.ToUpper(charset)
	return strings.HasPrefix(up, "UTF-16") || strings.HasPrefix(up, "UTF-32")
}
