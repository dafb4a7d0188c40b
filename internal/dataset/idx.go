package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IDX magic numbers.
const (
	idxImagesMagic = 2051 // 0x00000803
	idxLabelsMagic = 2049 // 0x00000801
)

// ReadIDXImages reads an IDX image file.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes
//	number of cols: 4 bytes
//	pixel data: unsigned bytes (0-255)
func ReadIDXImages(r io.Reader) ([][]byte, error) {
	var hdr struct {
		Magic, Count, Rows, Cols uint32
	}
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if hdr.Magic != idxImagesMagic {
		return nil, fmt.Errorf("invalid magic number: got %d, want %d", hdr.Magic, idxImagesMagic)
	}

	imageSize := int(hdr.Rows) * int(hdr.Cols)
	if imageSize == 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", hdr.Rows, hdr.Cols)
	}

	images := make([][]byte, 0, min(int(hdr.Count), 1<<16))
	for i := 0; i < int(hdr.Count); i++ {
		img := make([]byte, imageSize)
		if _, err := io.ReadFull(r, img); err != nil {
			return nil, fmt.Errorf("failed to read image %d: %w", i, err)
		}
		images = append(images, img)
	}

	return images, nil
}

// ReadIDXLabels reads an IDX label file.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes
func ReadIDXLabels(r io.Reader) ([]byte, error) {
	var hdr struct {
		Magic, Count uint32
	}
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if hdr.Magic != idxLabelsMagic {
		return nil, fmt.Errorf("invalid magic number: got %d, want %d", hdr.Magic, idxLabelsMagic)
	}

	labels := make([]byte, hdr.Count)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}

	return labels, nil
}

// FromIDX pairs images with labels, scaling pixels to [0, 1]. maxSamples
// limits the result (0 = all).
func FromIDX(images [][]byte, labels []byte, maxSamples int) (*Dataset, error) {
	if len(images) != len(labels) {
		return nil, fmt.Errorf("%d images but %d labels", len(images), len(labels))
	}

	n := len(images)
	if maxSamples > 0 {
		n = min(n, maxSamples)
	}

	ds := &Dataset{Samples: make([]Sample, n)}
	for i := range ds.Samples {
		input := make([]float64, len(images[i]))
		for j, px := range images[i] {
			input[j] = float64(px) / 255.0
		}
		ds.Samples[i] = Sample{Input: input, Label: int(labels[i])}
	}
	return ds, nil
}

// LoadMNIST loads the MNIST training or test set from dataDir, which must
// contain the extracted files train-images-idx3-ubyte and
// train-labels-idx1-ubyte (or the t10k-* pair for the test set).
func LoadMNIST(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	prefix := "t10k"
	if train {
		prefix = "train"
	}

	images, err := readIDXFile(filepath.Join(dataDir, prefix+"-images-idx3-ubyte"), ReadIDXImages)
	if err != nil {
		return nil, err
	}
	labels, err := readIDXFile(filepath.Join(dataDir, prefix+"-labels-idx1-ubyte"), ReadIDXLabels)
	if err != nil {
		return nil, err
	}

	return FromIDX(images, labels, maxSamples)
}

func readIDXFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	//nolint:gosec // G304: dataset path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	v, err := read(file)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
