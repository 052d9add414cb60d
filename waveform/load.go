package waveform

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/bpwave"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

const (
	TimeColumn     = "time_s"
	PressureColumn = "pressure_mmHg"
)

// Load reads a time/pressure table. The file needs a header naming at least
// the time_s and pressure_mmHg columns; other columns are ignored. The file
// may be compressed.
func Load(input string) (*Signal, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	rc, err := bpwave.MaybeDecompressReadCloserFromFile(f)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", input, err))
	}
	defer rc.Close()

	fileBytes, err := io.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(err)
	}

	sig, err := Parse(fileBytes)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", input, err))
	}

	return sig, nil
}

// Parse reads a time/pressure table held in memory.
func Parse(fileBytes []byte) (*Signal, error) {
	r := csv.NewReader(bytes.NewReader(fileBytes))
	r.Comma = bpwave.DetermineDelimiter(bytes.NewReader(fileBytes))
	r.TrimLeadingSpace = true

	samples := []Sample{}
	if err := gocsv.UnmarshalCSV(&headerCheckingReader{Reader: r}, &samples); err != nil {
		return nil, err
	}

	return &Signal{Samples: samples}, nil
}

// headerCheckingReader refuses tables whose header lacks one of the columns
// we need, which gocsv would otherwise silently leave at zero. Empty time or
// pressure cells become NaN for the same reason.
type headerCheckingReader struct {
	*csv.Reader
}

func (h *headerCheckingReader) ReadAll() ([][]string, error) {
	rows, err := h.Reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no header row")
	}

	for i, v := range rows[0] {
		// Spreadsheet exports sometimes lead with a byte order mark.
		rows[0][i] = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
	}

	if err := requireColumns(rows[0], TimeColumn, PressureColumn); err != nil {
		return nil, err
	}

	for i, v := range rows[0] {
		if v != TimeColumn && v != PressureColumn {
			continue
		}

		for _, row := range rows[1:] {
			if i < len(row) && strings.TrimSpace(row[i]) == "" {
				row[i] = missingCell
			}
		}
	}

	return rows, nil
}

// missingCell is what an empty numeric cell reads as. strconv.ParseFloat
// accepts it, so gocsv stores a NaN.
const missingCell = "NaN"

func requireColumns(header []string, required ...string) error {
	seen := make(map[string]struct{}, len(header))
	for _, v := range header {
		seen[v] = struct{}{}
	}

	missing := make([]string, 0)
	for _, v := range required {
		if _, exists := seen[v]; !exists {
			missing = append(missing, v)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required column(s) %s; header was [%s]", strings.Join(missing, ", "), strings.Join(header, ", "))
	}

	return nil
}
