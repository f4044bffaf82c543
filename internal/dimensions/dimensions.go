package dimensions

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// FileName is the per-variant dimensions resource, relative to the variant directory.
const FileName = "pad_dimensions.txt"

// Fallback readouts shown when the file is missing or does not match.
const (
	UnavailableSize = "Pad size unavailable"
	UnavailablePad  = "Y: -- mm, Z: -- mm"
)

// ErrNoMatch is returned when the text does not contain the X/Y/Z lines.
var ErrNoMatch = errors.New("dimensions: X/Y/Z lines not found")

// The three lines must appear in order, each on its own line; anything may precede them
// (the exporter writes a "Pad Dimensions (mm)" header first).
var padPattern = regexp.MustCompile(`(?i)X:\s*([0-9.]+)\s*[\r\n]+Y:\s*([0-9.]+)\s*[\r\n]+Z:\s*([0-9.]+)`)

// Dimensions are the nominal pad axes in millimeters. Raw keeps the tokens exactly as written
// so the pad readout shows what the file says.
type Dimensions struct {
	X, Y, Z float64
	Raw     [3]string
}

// Parse extracts the X, Y and Z values from a pad dimensions file.
func Parse(text string) (Dimensions, error) {
	m := padPattern.FindStringSubmatch(text)
	if m == nil {
		return Dimensions{}, ErrNoMatch
	}
	var d Dimensions
	vals := [3]*float64{&d.X, &d.Y, &d.Z}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Dimensions{}, fmt.Errorf("dimensions: %q: %w", m[i+1], err)
		}
		*vals[i] = v
		d.Raw[i] = m[i+1]
	}
	return d, nil
}

// Area is the pad contact area, the product of the two non-X axes.
func (d Dimensions) Area() float64 {
	return d.Y * d.Z
}

// SizeReadout renders the area with one decimal, e.g. "348.5 mm²".
func (d Dimensions) SizeReadout() string {
	return strconv.FormatFloat(d.Area(), 'f', 1, 64) + " mm²"
}

// PadReadout renders the raw Y and Z values, e.g. "Y: 42.5 mm, Z: 8.2 mm".
func (d Dimensions) PadReadout() string {
	return "Y: " + d.Raw[1] + " mm, Z: " + d.Raw[2] + " mm"
}
