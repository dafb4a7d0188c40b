package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// ReaderOptions configures decoding.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Default: ValidationStrict
}

// ReadFile reads and decodes the snapshot stored at path.
func ReadFile(path string, opts ReaderOptions) (snap *Snapshot, err error) {
	//nolint:gosec // G304: model path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	return Decode(file, opts)
}

// Decode reads a snapshot from reader.
//
// Nothing is returned unless the fixed header, the JSON header, every tensor
// location and (unless skipped) the checksum are valid.
func Decode(reader io.Reader, opts ReaderOptions) (*Snapshot, error) {
	fixedHeader := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(reader, fixedHeader); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}

	if string(fixedHeader[0:4]) != MagicBytes {
		return nil, fmt.Errorf("%w: got %q, expected %q", ErrInvalidMagic, fixedHeader[0:4], MagicBytes)
	}
	if version := binary.LittleEndian.Uint32(fixedHeader[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	headerSize := binary.LittleEndian.Uint64(fixedHeader[16:24])
	dataSize := binary.LittleEndian.Uint64(fixedHeader[24:32])
	var stored [ChecksumSize]byte
	copy(stored[:], fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}
	if dataSize > MaxDataSize || dataSize%8 != 0 {
		return nil, &ValidationError{Type: "invalid_data_size", Details: fmt.Sprintf("%d bytes", dataSize), Err: ErrOutOfBounds}
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	currentPos := int64(FixedHeaderSize) + int64(headerSize)
	if padding := alignedSize(currentPos) - currentPos; padding > 0 {
		if _, err := io.ReadFull(reader, make([]byte, padding)); err != nil {
			return nil, fmt.Errorf("failed to read padding: %w", err)
		}
	}

	data := make([]byte, dataSize)
	if _, err := io.ReadFull(reader, data); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	//nolint:gosec // G115: dataSize is bounded by MaxDataSize
	if err := ValidateHeader(&header, int64(dataSize), opts.ValidationLevel); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
			return nil, err
		}
	}

	snap := &Snapshot{Header: header, Tensors: make([]Tensor, 0, len(header.Tensors))}
	for _, meta := range header.Tensors {
		dataLen := int64(len(data))
		if meta.Offset < 0 || meta.Size < 0 || meta.Size > dataLen || meta.Offset > dataLen-meta.Size || meta.Size%8 != 0 {
			return nil, &ValidationError{Type: "out_of_bounds", Tensor: meta.Name, Details: "tensor outside data section", Err: ErrOutOfBounds}
		}
		values := make([]float64, meta.Size/8)
		for i := range values {
			off := meta.Offset + int64(i)*8
			values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
		}
		snap.Tensors = append(snap.Tensors, Tensor{
			Name:  meta.Name,
			Shape: append([]int(nil), meta.Shape...),
			Data:  values,
		})
	}

	return snap, nil
}
