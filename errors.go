package main

import "fmt"

// inputErrorKind classifies per-input failures. Every kind is non-fatal to
// the batch; it only affects the process exit status.
type inputErrorKind int

const (
	errIO inputErrorKind = iota
	errBinaryRejected
	errLowConfidence
	errNoSuchEncoding
	errDecode
)

// inputError is the error produced for a single failed input.
type inputError struct {
	kind inputErrorKind
	msg  string
	err  error // underlying cause, if any
}

func (e *inputError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return "input error"
}

func (e *inputError) Unwrap() error { return e.err }

func ioError(err error) *inputError {
	return &inputError{kind: errIO, err: err}
}

func binaryRejectedError() *inputError {
	return &inputError{kind: errBinaryRejected, msg: "Input is binary"}
}

func lowConfidenceError(det Detection, min float64) *inputError {
	return &inputError{
		kind: errLowConfidence,
		msg:  fmt.Sprintf("confidence: %v < %v (predicted: %s)", det.Confidence, min, det.Charset),
	}
}

func noSuchEncodingError(label, charset string) *inputError {
	return &inputError{
		kind: errNoSuchEncoding,
		msg:  fmt.Sprintf("no encoding: %q (charset: %q)", label, charset),
	}
}

func decodeError(label string) *inputError {
	return &inputError{
		kind: errDecode,
		msg:  fmt.Sprintf("input is not valid %s", label),
	}
}

// kindOf returns the failure classification of err, or -1 when err is not a
// per-input error.
func kindOf(err error) inputErrorKind {
	if ie, ok := err.(*inputError); ok {
		return ie.kind
	}
	return -1
}
