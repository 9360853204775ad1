// Package report writes similarity scores to CSV files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Header is the first record of every report file.
var Header = []string{"reference", "distorted", "metric", "score_real", "score_imag", "elapsed_ms"}

// Row is one comparison between a reference and a distorted image.
type Row struct {
	Reference string
	Distorted string
	Metric    string
	Score     complex128
	Elapsed   time.Duration
}

// Record formats the row as CSV fields.
func (r Row) Record() []string {
	return []string{
		r.Reference,
		r.Distorted,
		r.Metric,
		strconv.FormatFloat(real(r.Score), 'f', 6, 64),
		strconv.FormatFloat(imag(r.Score), 'f', 6, 64),
		fmt.Sprintf("%.3f", float64(r.Elapsed)/float64(time.Millisecond)),
	}
}

// CSVWriter appends comparison rows to a CSV file.
type CSVWriter struct {
	Filename string
	Append   bool

	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates a CSVWriter. Nothing is opened until Begin.
func NewCSVWriter(filename string, append bool) *CSVWriter {
	return &CSVWriter{
		Filename: filename,
		Append:   append,
	}
}

// Begin opens the file and writes the header when the file is new or
// was truncated.
func (c *CSVWriter) Begin() error {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0644)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", c.Filename, err)
	}
	c.file = file
	c.writer = csv.NewWriter(file)

	info, err := file.Stat()
	if err != nil {
		c.Close()
		return fmt.Errorf("failed to stat report %s: %w", c.Filename, err)
	}
	if info.Size() == 0 || !c.Append {
		c.writer.Write(Header)
		c.writer.Flush()
		if err := c.writer.Error(); err != nil {
			c.Close()
			return fmt.Errorf("failed to write header to %s: %w", c.Filename, err)
		}
	}
	return nil
}

// Write appends one row and flushes it.
func (c *CSVWriter) Write(r Row) error {
	if c.writer == nil {
		return fmt.Errorf("report %s is not open", c.Filename)
	}
	if err := c.writer.Write(r.Record()); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the file. It is a no-op when nothing is open.
func (c *CSVWriter) Close() error {
	if c.file == nil {
		return nil
	}
	c.writer.Flush()
	werr := c.writer.Error()
	err := c.file.Close()
	c.file = nil
	c.writer = nil
	if werr != nil {
		return werr
	}
	return err
}
