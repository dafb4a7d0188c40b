package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions controls ReadCSV.
type CSVOptions struct {
	Header     bool    // First row is a header and is skipped.
	Scale      float64 // Inputs are divided by Scale (e.g. 255 for pixels). 0 means 1.
	MaxSamples int     // Maximum number of samples to load (0 = load all).
}

// LoadCSV loads a dataset from a CSV file. See ReadCSV for the format.
func LoadCSV(path string, opts CSVOptions) (*Dataset, error) {
	//nolint:gosec // G304: dataset path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, opts)
}

// ReadCSV reads samples in the form
//
//	label,x1,x2,...,xn
//
// Every row must have the same number of fields and at least one input.
func ReadCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	ds := &Dataset{}
	line := 0
	for opts.MaxSamples <= 0 || ds.Len() < opts.MaxSamples {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			return nil, &ParseError{Line: line, Details: "failed to read CSV", Err: err}
		}
		if line == 1 && opts.Header {
			continue
		}

		if len(record) < 2 {
			return nil, &ParseError{Line: line, Details: fmt.Sprintf("got %d fields, need a label and at least one input", len(record))}
		}

		label, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, &ParseError{Line: line, Details: "invalid label", Err: err}
		}
		if label < 0 {
			return nil, &ParseError{Line: line, Details: fmt.Sprintf("negative label %d", label)}
		}

		input := make([]float64, len(record)-1)
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &ParseError{Line: line, Details: fmt.Sprintf("invalid value in column %d", j+2), Err: err}
			}
			input[j] = v / scale
		}

		ds.Samples = append(ds.Samples, Sample{Input: input, Label: label})
	}

	if ds.Len() == 0 {
		return nil, fmt.Errorf("CSV contains no samples")
	}
	return ds, nil
}
