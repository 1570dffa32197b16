package codec

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression of a binary frame.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name as printed by String.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block layout: [UncompressedSize uint32][CompressedSize uint32][Data...].
// CompressedSize 0 means Data is stored uncompressed.
const blockHeaderSize = 8

// compressBlock frames data, compressing it when that saves at least 10%.
func compressBlock(data []byte, c Compression) ([]byte, error) {
	if c > CompressionZSTD {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}

	var compressed []byte
	if len(data) > 0 {
		switch c {
		case CompressionLZ4:
			buf := make([]byte, lz4.CompressBlockBound(len(data)))
			n, err := lz4.CompressBlock(data, buf, nil)
			if err != nil {
				return nil, fmt.Errorf("lz4 compress: %w", err)
			}
			compressed = buf[:n]
		case CompressionZSTD:
			enc := getZstdEncoder()
			compressed = enc.EncodeAll(data, nil)
			putZstdEncoder(enc)
		}
	}

	out := make([]byte, blockHeaderSize, blockHeaderSize+len(data))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		binary.LittleEndian.PutUint32(out[4:], 0)
		return append(out, data...), nil
	}

	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	return append(out, compressed...), nil
}

// lz4MaxRatio bounds how much an LZ4 block can expand: one extra length
// byte encodes at most 255 more output bytes.
const lz4MaxRatio = 255

// decompressBlock reverses compressBlock and returns the block payload and
// the number of bytes consumed. want is the payload size the frame header
// implies; a block declaring any other size is rejected before anything is
// allocated for it.
func decompressBlock(data []byte, c Compression, want int) ([]byte, int, error) {
	if len(data) < blockHeaderSize {
		return nil, 0, fmt.Errorf("%w: block too small for header", ErrCorrupt)
	}

	rawSize := int(binary.LittleEndian.Uint32(data[0:]))
	packedSize := int(binary.LittleEndian.Uint32(data[4:]))
	body := data[blockHeaderSize:]

	if rawSize != want {
		return nil, 0, fmt.Errorf("%w: block holds %d bytes, header implies %d", ErrCorrupt, rawSize, want)
	}

	if packedSize == 0 {
		if len(body) < rawSize {
			return nil, 0, fmt.Errorf("%w: block data too small", ErrCorrupt)
		}
		return body[:rawSize], blockHeaderSize + rawSize, nil
	}

	if len(body) < packedSize {
		return nil, 0, fmt.Errorf("%w: compressed block data too small", ErrCorrupt)
	}
	packed := body[:packedSize]
	consumed := blockHeaderSize + packedSize

	switch c {
	case CompressionLZ4:
		if rawSize/lz4MaxRatio > packedSize {
			return nil, 0, fmt.Errorf("%w: lz4 block cannot expand to %d bytes", ErrCorrupt, rawSize)
		}
		out := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(packed, out)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: lz4: %w", ErrCorrupt, err)
		}
		if n != rawSize {
			return nil, 0, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, consumed, nil

	case CompressionZSTD:
		var zh zstd.Header
		if err := zh.Decode(packed); err != nil {
			return nil, 0, fmt.Errorf("%w: zstd: %w", ErrCorrupt, err)
		}
		if zh.HasFCS && zh.FrameContentSize != uint64(rawSize) {
			return nil, 0, fmt.Errorf("%w: zstd frame holds %d bytes, want %d", ErrCorrupt, zh.FrameContentSize, rawSize)
		}

		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(packed, make([]byte, 0, rawSize))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: zstd: %w", ErrCorrupt, err)
		}
		if len(out) != rawSize {
			return nil, 0, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, consumed, nil

	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}
