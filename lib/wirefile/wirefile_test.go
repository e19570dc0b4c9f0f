// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirefile

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// sampleStream is compressible enough for every algorithm to engage.
var sampleStream = []byte(strings.Repeat(`{"interface":"lan","enabled":true}`, 64))

func TestRoundTrip(t *testing.T) {
	for _, tag := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(tag.String(), func(t *testing.T) {
			framed, err := Encode(sampleStream, tag)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !IsContainer(framed) {
				t.Error("framed output lacks container magic")
			}
			if CompressionTag(framed[4]) != tag {
				t.Errorf("stored tag = %s, want %s", CompressionTag(framed[4]), tag)
			}
			stream, err := Decode(framed)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !bytes.Equal(stream, sampleStream) {
				t.Error("round-trip mismatch")
			}
		})
	}
}

func TestIncompressibleFallsBackToRaw(t *testing.T) {
	// Two bytes cannot shrink under any block compressor.
	tiny := []byte{0x01, 0xfe}
	framed, err := Encode(tiny, CompressionZstd)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := CompressionTag(framed[4]); got != CompressionNone {
		t.Errorf("stored tag = %s, want none", got)
	}
	stream, err := Decode(framed)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(stream, tiny) {
		t.Error("round-trip mismatch")
	}
}

func TestDecodeRejectsCorruption(t *testing.T) {
	framed, err := Encode(sampleStream, CompressionNone)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte{}, framed...)
		bad[0] = 'X'
		if _, err := Decode(bad); err == nil {
			t.Error("Decode accepted bad magic")
		}
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		bad := append([]byte{}, framed...)
		bad[len(bad)-1] ^= 0xff
		if _, err := Decode(bad); err == nil {
			t.Error("Decode accepted a corrupted payload")
		}
	})

	t.Run("truncated header", func(t *testing.T) {
		if _, err := Decode(framed[:headerSize-1]); err == nil {
			t.Error("Decode accepted a truncated header")
		}
	})

	t.Run("unknown compression tag", func(t *testing.T) {
		bad := append([]byte{}, framed...)
		bad[4] = 0x7f
		if _, err := Decode(bad); err == nil {
			t.Error("Decode accepted an unknown compression tag")
		}
	})
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.awf")
	if err := WriteFile(path, sampleStream, CompressionLZ4); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	stream, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(stream, sampleStream) {
		t.Error("file round-trip mismatch")
	}
}

func TestDigestStability(t *testing.T) {
	first := Digest(sampleStream)
	second := Digest(sampleStream)
	if first != second {
		t.Error("digest is not deterministic")
	}
	if Digest([]byte("other")) == first {
		t.Error("distinct streams share a digest")
	}
}

func TestParseCompressionTag(t *testing.T) {
	for _, tag := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		parsed, err := ParseCompressionTag(tag.String())
		if err != nil || parsed != tag {
			t.Errorf("ParseCompressionTag(%q) = %v, %v", tag.String(), parsed, err)
		}
	}
	if _, err := ParseCompressionTag("gzip"); err == nil {
		t.Error("unknown name accepted")
	}
}
