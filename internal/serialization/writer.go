package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// Writer writes snapshots to a file.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates (or truncates) path and returns a Writer for it.
func NewWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: model path is chosen by the caller
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &Writer{file: file}, nil
}

// Write encodes snap into the file.
func (w *Writer) Write(snap *Snapshot) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	return Encode(w.file, snap)
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// WriteFile writes snap to path, creating or truncating it. The file is
// closed on every path; a close error is reported when nothing else failed.
func WriteFile(path string, snap *Snapshot) (err error) {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	return w.Write(snap)
}

// Encode writes snap to writer in .twl format.
//
// Header.FormatVersion and Header.Tensors are filled in from snap.Tensors;
// a zero Header.CreatedAt is set to the current time.
func Encode(writer io.Writer, snap *Snapshot) error {
	header := snap.Header
	header.FormatVersion = FormatVersion
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}

	// Lay out tensors back to back and collect their bytes
	var currentOffset int64
	header.Tensors = make([]TensorMeta, 0, len(snap.Tensors))
	for _, t := range snap.Tensors {
		if len(t.Data) != t.NumElements() {
			return fmt.Errorf("tensor %s: %d values for shape %v", t.Name, len(t.Data), t.Shape)
		}
		size := int64(len(t.Data)) * 8
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   t.Name,
			DType:  DTypeFloat64,
			Shape:  append([]int(nil), t.Shape...),
			Offset: currentOffset,
			Size:   size,
		})
		currentOffset += size
	}

	data := make([]byte, currentOffset)
	pos := 0
	for _, t := range snap.Tensors {
		for _, v := range t.Data {
			binary.LittleEndian.PutUint64(data[pos:], math.Float64bits(v))
			pos += 8
		}
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	checksum := ComputeChecksum(data)

	fixedHeader := make([]byte, FixedHeaderSize)
	copy(fixedHeader[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixedHeader[4:8], uint32(FormatVersion))
	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixedHeader[8:12], flags)
	// 0x0C-0x0F reserved
	binary.LittleEndian.PutUint64(fixedHeader[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixedHeader[24:32], uint64(len(data)))
	copy(fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := writer.Write(fixedHeader); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := writer.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	currentPos := int64(FixedHeaderSize) + int64(len(headerJSON))
	if padding := alignedSize(currentPos) - currentPos; padding > 0 {
		if _, err := writer.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}

	return nil
}
