// Package report renders flattened face coordinates and mesh summaries.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/objmesh/mesh"
)

// FormatDebug renders values as a bracketed, comma separated list, e.g.
// [0.0, 1.5, 1e-5]
func FormatDebug(values []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatScalar(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// WriteDebug writes FormatDebug(values) and a newline to w
func WriteDebug(w io.Writer, values []float32) error {
	_, err := fmt.Fprintln(w, FormatDebug(values))
	return err
}

// FormatScalar prints the shortest representation that reads back as the
// same float32. Magnitudes at or above 1e16 or below 1e-4 use exponent form,
// everything else is decimal with at least one fractional digit.
func FormatScalar(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := float32(math.Abs(f))
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(f, 'e', -1, 32)
		mant, exp, _ := strings.Cut(s, "e")
		e, _ := strconv.Atoi(exp)
		return mant + "e" + strconv.Itoa(e)
	}
	s := strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WriteSummaryYAML writes s to w as YAML
func WriteSummaryYAML(w io.Writer, s mesh.Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	_, err = w.Write(data)
	return err
}
