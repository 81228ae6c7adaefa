package fileutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader provides a helper/utility to read CSV file(s)
type CSVReader struct {
	FilePath string
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		FilePath: fp,
	}
}

// Process streams the file in a single pass. headerFn gets the first record,
// rowFn every following one together with its 1-based line number. Lines
// starting with '#' are skipped and rows may have any number of fields.
func (r *CSVReader) Process(headerFn func([]string) error, rowFn func(line int, row []string) error) error {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	return process(f, headerFn, rowFn)
}

func process(src io.Reader, headerFn func([]string) error, rowFn func(line int, row []string) error) error {
	reader := csv.NewReader(src)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}

	if err = headerFn(header); err != nil {
		return err
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break // end of file, stop
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if err = rowFn(line, row); err != nil {
			return err
		}
	}

	return nil
}
