package packbits

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/packbits/internal/word"
)

// Compression defines the compression algorithm used for snapshots.
type Compression uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZstd indicates zstd block compression (better ratio, good for cold data).
	CompressionZstd Compression = 2
)

// SnapshotOptions configures WriteSnapshot.
type SnapshotOptions struct {
	Compression Compression
}

// maxSnapshotWords bounds the declared word count of a frame so a corrupt
// header cannot drive an absurd allocation.
const maxSnapshotWords = 1 << 32

// WriteTo writes the raw frame: word count, cardinality, then the words,
// all little-endian. Implements io.WriterTo.
func (b *BitSet) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(b.words))); err != nil {
		return 0, err
	}
	n := int64(8)
	if err := binary.Write(w, binary.LittleEndian, uint64(b.count)); err != nil {
		return n, err
	}
	n += 8

	for _, wd := range b.words {
		if err := binary.Write(w, binary.LittleEndian, uint64(wd)); err != nil {
			return n, err
		}
		n += 8
	}
	return n, nil
}

// ReadFrom replaces the set's contents with a frame written by WriteTo.
// The decoded storage is verified against both invariants before it becomes
// visible; a failure leaves the receiver unchanged and returns
// ErrCorruptSnapshot. Implements io.ReaderFrom.
func (b *BitSet) ReadFrom(r io.Reader) (int64, error) {
	var wordCount, count uint64
	if err := binary.Read(r, binary.LittleEndian, &wordCount); err != nil {
		return 0, err
	}
	n := int64(8)
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return n, err
	}
	n += 8

	if wordCount > maxSnapshotWords {
		return n, fmt.Errorf("%w: implausible word count %d", ErrCorruptSnapshot, wordCount)
	}

	words := make([]word.Word, wordCount)
	pop := 0
	for i := range words {
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return n, err
		}
		n += 8
		words[i] = word.Word(v)
		pop += words[i].PopCount()
	}

	if uint64(pop) != count {
		return n, fmt.Errorf("%w: %w", ErrCorruptSnapshot, &ErrCountMismatch{Cached: int(count), Actual: pop})
	}
	if wordCount > 0 && words[wordCount-1] == word.Empty {
		return n, fmt.Errorf("%w: %w", ErrCorruptSnapshot, &ErrNotCanonical{WordCount: int(wordCount)})
	}

	b.words = words
	b.count = pop
	return n, nil
}

// WriteSnapshot writes a one-byte codec tag followed by the frame,
// compressed per opts.
func (b *BitSet) WriteSnapshot(w io.Writer, opts SnapshotOptions) error {
	switch opts.Compression {
	case CompressionNone, CompressionLZ4, CompressionZstd:
	default:
		return &ErrUnknownCompression{Codec: uint8(opts.Compression)}
	}

	if _, err := w.Write([]byte{byte(opts.Compression)}); err != nil {
		return err
	}
	if opts.Compression == CompressionNone {
		_, err := b.WriteTo(w)
		return err
	}

	var raw bytes.Buffer
	if _, err := b.WriteTo(&raw); err != nil {
		return err
	}
	block, err := compressBlock(raw.Bytes(), opts.Compression)
	if err != nil {
		return err
	}
	_, err = w.Write(block)
	return err
}

// ReadSnapshot reads a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*BitSet, error) {
	var codec [1]byte
	if _, err := io.ReadFull(r, codec[:]); err != nil {
		return nil, err
	}

	b := New()
	switch Compression(codec[0]) {
	case CompressionNone:
		if _, err := b.ReadFrom(r); err != nil {
			return nil, err
		}
	case CompressionLZ4, CompressionZstd:
		raw, err := decompressBlock(r, Compression(codec[0]))
		if err != nil {
			return nil, err
		}
		if _, err := b.ReadFrom(bytes.NewReader(raw)); err != nil {
			return nil, err
		}
	default:
		return nil, &ErrUnknownCompression{Codec: codec[0]}
	}
	return b, nil
}

// Zstd encoder/decoder pools for efficiency.
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

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...].
// CompressedSize == 0 means the data is stored uncompressed.
const blockHeaderSize = 8

// compressBlock compresses the frame with the given algorithm. If
// compression does not help (ratio > 0.9), the frame is stored raw behind
// the same header.
func compressBlock(data []byte, compression Compression) ([]byte, error) {
	var compressed []byte

	switch compression {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			compressed = buf[:n]
		}
	case CompressionZstd:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		compressed = enc.EncodeAll(data, nil)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0)
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

// decompressBlock reads and decodes one block written by compressBlock.
func decompressBlock(r io.Reader, compression Compression) ([]byte, error) {
	var hdr [blockHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	uncompressedSize := binary.LittleEndian.Uint32(hdr[0:])
	compressedSize := binary.LittleEndian.Uint32(hdr[4:])

	if compressedSize == 0 {
		raw := make([]byte, uncompressedSize)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	payload := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	switch compression {
	case CompressionLZ4:
		raw := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		if uint32(n) != uncompressedSize {
			return nil, fmt.Errorf("%w: short lz4 block", ErrCorruptSnapshot)
		}
		return raw, nil
	case CompressionZstd:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		raw, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		if uint32(len(raw)) != uncompressedSize {
			return nil, fmt.Errorf("%w: zstd size mismatch", ErrCorruptSnapshot)
		}
		return raw, nil
	default:
		return nil, &ErrUnknownCompression{Codec: uint8(compression)}
	}
}
