// Package compress frames byte blocks compressed with LZ4 or Zstandard.
//
// A frame is an 8-byte little-endian header followed by the payload:
//
//	[uncompressed size uint32][compressed size uint32][payload]
//
// A compressed size of zero marks a payload stored raw, which happens when
// compression would not shrink the block by at least ten percent.
package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/vecmath/internal/conv"
)

// Type names a compression algorithm. The values are persisted.
type Type uint8

const (
	// None stores the block raw.
	None Type = 0
	// LZ4 favours speed.
	LZ4 Type = 1
	// Zstd favours ratio.
	Zstd Type = 2
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Valid reports whether t is a known algorithm.
func (t Type) Valid() bool {
	return t <= Zstd
}

// HeaderSize is the length of the frame header.
const HeaderSize = 8

// ErrCorrupt is returned for frames that cannot be decoded.
var ErrCorrupt = errors.New("corrupt compressed frame")

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Frame compresses data with t and returns a framed block.
func Frame(data []byte, t Type) ([]byte, error) {
	rawSize, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("block size: %w", err)
	}

	var payload []byte
	switch t {
	case None:
	case LZ4:
		payload, err = compressLZ4(data)
	case Zstd:
		payload, err = compressZstd(data)
	default:
		return nil, fmt.Errorf("unknown compression type %d", t)
	}
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 || float64(len(payload)) > float64(len(data))*0.9 {
		out := make([]byte, HeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], rawSize)
		copy(out[HeaderSize:], data)
		return out, nil
	}

	out := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out[0:], rawSize)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(payload)))
	copy(out[HeaderSize:], payload)
	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, buf, nil)
	if err != nil {
		return nil, err
	}
	// n == 0 means incompressible.
	return buf[:n], nil
}

func compressZstd(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Unframe decodes a block produced by Frame with the same t.
func Unframe(frame []byte, t Type) ([]byte, error) {
	if len(frame) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(frame))
	}

	rawSize := binary.LittleEndian.Uint32(frame[0:])
	packedSize := binary.LittleEndian.Uint32(frame[4:])
	body := frame[HeaderSize:]

	if packedSize == 0 {
		if uint64(len(body)) < uint64(rawSize) {
			return nil, fmt.Errorf("%w: raw block truncated", ErrCorrupt)
		}
		return body[:rawSize], nil
	}
	if uint64(len(body)) < uint64(packedSize) {
		return nil, fmt.Errorf("%w: compressed block truncated", ErrCorrupt)
	}
	body = body[:packedSize]

	n, err := conv.Uint32ToInt(rawSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	out := make([]byte, n)

	switch t {
	case LZ4:
		got, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if got != n {
			return nil, fmt.Errorf("%w: size mismatch", ErrCorrupt)
		}
		return out, nil

	case Zstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(body, out[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if len(decoded) != n {
			return nil, fmt.Errorf("%w: size mismatch", ErrCorrupt)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: compressed payload with type %s", ErrCorrupt, t)
	}
}
