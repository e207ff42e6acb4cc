package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWireFormat(t *testing.T) {
	o := Outcome{
		Path: "a.txt",
		Metadata: Metadata{
			Chardet:    Detection{Charset: "Shift_JIS", Confidence: 0.87, Language: "ja"},
			Encoding:   "shift_jis",
			Fallbacked: false,
			ReadBytes:  10,
		},
		Content: []byte("こんにちは"),
	}

	var buf bytes.Buffer
	require.NoError(t, writeRecord(Config{JSON: true}, o, &buf))

	line := buf.String()
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &raw))

	assert.Equal(t, "a.txt", raw["path"])
	assert.Equal(t, "こんにちは", raw["content"])
	assert.NotContains(t, raw, "error")

	meta, ok := raw["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "shift_jis", meta["encoding"])
	assert.Equal(t, false, meta["fallbacked"])
	assert.Equal(t, float64(10), meta["read_bytes"])

	cd, ok := meta["chardet"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Shift_JIS", cd["charset"])
	assert.Equal(t, 0.87, cd["confidence"])
	assert.Equal(t, "ja", cd["language"])
}

func TestRecordErrorField(t *testing.T) {
	o := Outcome{Path: "b.bin", Err: binaryRejectedError()}

	var buf bytes.Buffer
	require.NoError(t, writeRecord(Config{JSON: true}, o, &buf))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "Input is binary", raw["error"])
	assert.Nil(t, raw["content"])
}

func TestWriteStatsSortsEncodings(t *testing.T) {
	s := RunStats{
		Inputs:    4,
		ReadBytes: 100,
		ByEncoding: map[string]int{
			"utf-8":        2,
			"shift_jis":    1,
			"windows-1252": 1,
		},
		Fallbacked: 1,
	}

	var buf bytes.Buffer
	writeStats(&buf, &s)
	out := buf.String()

	assert.Contains(t, out, "Encodings:\n  shift_jis: 1\n  utf-8: 2\n  windows-1252: 1\n")
	assert.Contains(t, out, "Inputs: 4\n")
	assert.Contains(t, out, "Fallbacks: 1\n")
}

func TestRunStatsAdd(t *testing.T) {
	var s RunStats

	s.Add(Outcome{Metadata: Metadata{Encoding: "utf-8", ReadBytes: 5}})
	s.Add(Outcome{Metadata: Metadata{Encoding: "utf-8", ReadBytes: 3, Fallbacked: true}})
	s.Add(Outcome{Metadata: Metadata{ReadBytes: 2}}) // binary pass-through
	s.Add(Outcome{Metadata: Metadata{ReadBytes: 0}}) // empty input
	s.Add(Outcome{Err: binaryRejectedError(), Metadata: Metadata{ReadBytes: 7}})

	assert.Equal(t, 5, s.Inputs)
	assert.Equal(t, int64(17), s.ReadBytes)
	assert.Equal(t, 2, s.ByEncoding["utf-8"])
	assert.Equal(t, 1, s.Fallbacked)
	assert.Equal(t, 1, s.Binary)
	assert.Equal(t, 1, s.Empty)
	assert.Equal(t, 1, s.Failed)
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, "-", displayPath(""))
	assert.Equal(t, "-", displayPath("-"))
	assert.Equal(t, "a.txt", displayPath("a.txt"))
}
