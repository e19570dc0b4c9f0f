// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirefile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/zeebo/blake3"
)

// magic identifies an attrwire container file.
var magic = [4]byte{'A', 'W', 'F', '1'}

// headerSize is the fixed container header: magic, compression tag,
// big-endian uncompressed size, 32-byte digest.
const headerSize = 4 + 1 + 4 + 32

// streamKey is the 32-byte BLAKE3 key for stream digests. Domain
// separation keeps container digests from colliding with any other
// keyed use of the same stream bytes. The value is the ASCII domain
// name zero-padded to 32 bytes; changing it invalidates every stored
// digest.
var streamKey = [32]byte{
	'a', 't', 't', 'r', 'w', 'i', 'r', 'e', '.', 's', 't', 'r', 'e', 'a', 'm',
}

// Digest computes the keyed BLAKE3 digest of an uncompressed attribute
// stream. This is the value stored in container headers and printed by
// the CLI digest command.
func Digest(stream []byte) [32]byte {
	hasher, err := blake3.NewKeyed(streamKey[:])
	if err != nil {
		// NewKeyed fails only on wrong key length, which the fixed
		// array rules out.
		panic("wirefile: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(stream)
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// IsContainer reports whether data begins with the container magic.
// The CLI uses it to tell framed files from raw attribute streams.
func IsContainer(data []byte) bool {
	return len(data) >= len(magic) && bytes.Equal(data[:len(magic)], magic[:])
}

// Encode frames stream into a container using the requested
// compression. When the compressed form would not be smaller than the
// input, the frame silently falls back to storing the stream raw; the
// tag byte in the frame records what was actually used.
func Encode(stream []byte, tag CompressionTag) ([]byte, error) {
	compressed, usedTag, err := compress(stream, tag)
	if err != nil {
		return nil, err
	}

	if len(stream) > int(^uint32(0)) {
		return nil, fmt.Errorf("stream of %d bytes exceeds the container size limit", len(stream))
	}

	digest := Digest(stream)

	out := make([]byte, 0, headerSize+len(compressed))
	out = append(out, magic[:]...)
	out = append(out, byte(usedTag))
	out = binary.BigEndian.AppendUint32(out, uint32(len(stream)))
	out = append(out, digest[:]...)
	out = append(out, compressed...)
	return out, nil
}

// Decode unframes a container and returns the verified uncompressed
// stream.
func Decode(data []byte) ([]byte, error) {
	if !IsContainer(data) {
		return nil, fmt.Errorf("not an attrwire container (bad magic)")
	}
	if len(data) < headerSize {
		return nil, fmt.Errorf("container truncated: %d bytes, header needs %d", len(data), headerSize)
	}

	tag := CompressionTag(data[4])
	size := int(binary.BigEndian.Uint32(data[5:]))
	var digest [32]byte
	copy(digest[:], data[9:9+32])

	stream, err := decompress(data[headerSize:], tag, size)
	if err != nil {
		return nil, err
	}
	if got := Digest(stream); got != digest {
		return nil, fmt.Errorf("container digest mismatch: stored %x, computed %x", digest, got)
	}
	return stream, nil
}

// WriteFile frames stream and writes it to path.
func WriteFile(path string, stream []byte, tag CompressionTag) error {
	framed, err := Encode(stream, tag)
	if err != nil {
		return fmt.Errorf("framing %s: %w", path, err)
	}
	if err := os.WriteFile(path, framed, 0o644); err != nil {
		return fmt.Errorf("writing container: %w", err)
	}
	return nil
}

// ReadFile reads and unframes the container at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading container: %w", err)
	}
	stream, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stream, nil
}
