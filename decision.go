package main

// resolveEncoding picks the encoding used to transcode one input. The result
// depends only on the detected confidence and the configured threshold and
// fallback, never on the input bytes themselves.
//
// When the confidence clears the threshold the detected charset is trusted.
// Below the threshold the fallback encoding takes over regardless of how low
// the confidence is; with no fallback configured the input is a hard failure
// and no transcoding is attempted. Thresholds outside [0,1] are accepted:
// anything above 1 always consults the fallback, anything at or below 0
// always trusts detection.
func resolveEncoding(det Detection, confidenceMin float64, fallback string) (label string, fallbacked bool, err error) {
	if det.Confidence >= confidenceMin {
		return det.Charset, false, nil
	}
	if fallback != "" {
		return fallback, true, nil
	}
	return "", false, lowConfidenceError(det, confidenceMin)
}
