// Package annotate joins the raw trace, the smoothed trace and the detected
// peaks into one row per sample and writes them out as CSV.
package annotate

import (
	"os"

	"github.com/carbocation/bpwave/peaks"
	"github.com/carbocation/bpwave/waveform"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// ResultRow is one output line. Smoothed is pre-rendered because an undefined
// smoothed value must be written as an empty cell.
type ResultRow struct {
	Time        float64 `csv:"time_s"`
	Pressure    float64 `csv:"pressure_mmHg"`
	Smoothed    string  `csv:"pressure_smooth"`
	IsSystolic  Flag    `csv:"is_systolic_peak"`
	IsDiastolic Flag    `csv:"is_diastolic_peak"`
}

// Flag is written as True/False, matching the tables produced by earlier
// versions of this analysis.
type Flag bool

func (f Flag) MarshalCSV() (string, error) {
	if f {
		return "True", nil
	}

	return "False", nil
}

// Rows builds one ResultRow per sample. If the signal has not been smoothed,
// every smoothed cell is empty.
func Rows(sig *waveform.Signal, pk peaks.Peaks) ([]ResultRow, error) {
	systolic := indexSet(pk.Systolic)
	diastolic := indexSet(pk.Diastolic)

	out := make([]ResultRow, 0, sig.Len())
	for i, v := range sig.Samples {
		row := ResultRow{
			Time:        v.Time,
			Pressure:    v.Pressure,
			IsSystolic:  Flag(systolic[i]),
			IsDiastolic: Flag(diastolic[i]),
		}

		if i < len(sig.Smoothed) {
			txt, err := sig.Smoothed[i].MarshalText()
			if err != nil {
				return nil, pfx.Err(err)
			}
			row.Smoothed = string(txt)
		}

		out = append(out, row)
	}

	return out, nil
}

func indexSet(idx []int) map[int]bool {
	out := make(map[int]bool, len(idx))
	for _, v := range idx {
		out[v] = true
	}

	return out
}

// WriteFile overwrites path with a header and one line per row. The parent
// directory must already exist.
func WriteFile(path string, rows []ResultRow) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	return pfx.Err(f.Close())
}
