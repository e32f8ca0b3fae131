package gis

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// geoidStep is the sample spacing of the grid in decimal degrees
// (15 arc minutes).
const geoidStep = 0.25

// GeoidTable answers geoid height queries from a gridded model such as
// the EGM96 15-arc-minute worldwide grid. The table is loaded once and
// read-only afterwards, so it is safe for concurrent readers.
//
// Interpolation is bilinear. Values interpolated this way land close to,
// but not exactly on, the sample values published alongside the EGM96
// grid, which were derived with spline interpolation.
type GeoidTable struct {
	samples []float64 // row-major, row 0 southernmost
	rows    int
	cols    int
}

// NewGeoidTable parses a geoid grid from r. The first line is a header
// and is skipped. Data lines carry whitespace-separated height samples;
// a line with exactly one token ends the current row, that token
// included. Rows in the stream run north to south and are reversed on
// load so that row 0 is the southernmost. Malformed input fails with
// ErrDataLoad.
func NewGeoidTable(r io.Reader) (*GeoidTable, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]float64
	var row []float64
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrDataLoad, "row %d: bad sample %q", len(rows), f)
			}
			row = append(row, v)
		}
		if len(fields) == 1 {
			rows = append(rows, row)
			row = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(ErrDataLoad, "read: %v", err)
	}
	if len(row) != 0 {
		return nil, errors.Wrap(ErrDataLoad, "unterminated final row")
	}
	if len(rows) < 2 {
		return nil, errors.Wrapf(ErrDataLoad, "%d data rows, need at least 2", len(rows))
	}

	cols := len(rows[0])
	if cols < 2 {
		return nil, errors.Wrapf(ErrDataLoad, "%d columns, need at least 2", cols)
	}
	t := &GeoidTable{
		samples: make([]float64, 0, len(rows)*cols),
		rows:    len(rows),
		cols:    cols,
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if len(rows[i]) != cols {
			return nil, errors.Wrapf(ErrDataLoad,
				"row %d has %d samples, want %d", i, len(rows[i]), cols)
		}
		t.samples = append(t.samples, rows[i]...)
	}
	return t, nil
}

// OpenGeoidTable loads a geoid grid from a file, decompressing
// transparently when the name ends in .zst. A missing or unreadable file
// fails with ErrDataLoad.
func OpenGeoidTable(path string) (*GeoidTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDataLoad, "%v", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(ErrDataLoad, "zstd %s: %v", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return NewGeoidTable(r)
}

// Height returns the geoid height at a position, interpolated bilinearly
// from the four bracketing grid samples and rounded to 2 decimal places.
//
// Param lat, lon are unsigned decimal degrees (latitude 0..180 from the
// south pole, longitude 0..360), referenced to WGS84.
//
// Queries whose bracketing cell extends past the loaded grid fail with
// ErrOutOfRange.
func (t *GeoidTable) Height(lat, lon float64) (float64, error) {
	x := lon
	y := lat

	// The four surrounding grid nodes.
	x1 := x - math.Mod(x, geoidStep)
	x2 := x1 + geoidStep
	y1 := y - math.Mod(y, geoidStep)
	y2 := y1 + geoidStep

	row1, col1 := int(y1/geoidStep), int(x1/geoidStep)
	row2, col2 := int(y2/geoidStep), int(x2/geoidStep)
	if x < 0 || y < 0 || row2 >= t.rows || col2 >= t.cols {
		return 0, errors.Wrapf(ErrOutOfRange, "geoid lookup (%v, %v)", lat, lon)
	}

	q11 := t.samples[row1*t.cols+col1]
	q12 := t.samples[row2*t.cols+col1]
	q21 := t.samples[row1*t.cols+col2]
	q22 := t.samples[row2*t.cols+col2]

	xy1 := ((x2-x)/(x2-x1))*q11 + ((x-x1)/(x2-x1))*q21
	xy2 := ((x2-x)/(x2-x1))*q12 + ((x-x1)/(x2-x1))*q22
	yx := ((y2-y)/(y2-y1))*xy1 + ((y-y1)/(y2-y1))*xy2

	return math.Round(yx*100) / 100, nil
}
