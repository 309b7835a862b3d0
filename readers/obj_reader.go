package readers

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/notargets/objmesh/logger"
	"github.com/notargets/objmesh/mesh"
)

const (
	vertexTag = "v"
	faceTag   = "f"
)

// ReadOBJ reads a whole OBJ file into memory and parses it
func ReadOBJ(filename string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mesh.ErrIO, err)
	}
	logger.Debug("read obj file",
		zap.String("file", filename), zap.Int("bytes", len(data)))
	return ParseOBJ(string(data))
}

// ParseOBJ collects the vertex and face records of an OBJ document. Only the
// "v" and "f" tags are recognized, every other line is skipped. Tokens are
// separated by single spaces and only the first three values after the tag
// are read.
func ParseOBJ(content string) (*mesh.Mesh, error) {
	msh := mesh.NewMesh()

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		fields := strings.Split(line, " ")

		switch fields[0] {
		case vertexTag:
			var v mgl32.Vec3
			if err := parseRecord(fields, func(j int, tok string) (err error) {
				v[j], err = parseCoordinate(tok)
				return
			}); err != nil {
				return nil, &mesh.RecordError{Line: i + 1, Text: line, Err: err}
			}
			msh.AddVertex(v)
		case faceTag:
			var f mesh.Face
			if err := parseRecord(fields, func(j int, tok string) (err error) {
				f[j], err = parseIndex(tok)
				return
			}); err != nil {
				return nil, &mesh.RecordError{Line: i + 1, Text: line, Err: err}
			}
			msh.AddFace(f)
		}
	}

	logger.Debug("parsed obj content",
		zap.Int("lines", len(lines)),
		zap.Int("vertices", msh.NumVertices),
		zap.Int("faces", msh.NumFaces))
	return msh, nil
}

// parseRecord hands tokens 2-4 of a tagged record to parse
func parseRecord(fields []string, parse func(j int, tok string) error) error {
	if len(fields) < 4 {
		return fmt.Errorf("%w: expected 3 values after %q, got %d",
			mesh.ErrMalformedRecord, fields[0], len(fields)-1)
	}
	for j := 0; j < 3; j++ {
		if err := parse(j, fields[1+j]); err != nil {
			return err
		}
	}
	return nil
}

// parseCoordinate accepts decimal floats, inf and nan. Go literal forms
// (hex mantissas, digit separators) are rejected.
func parseCoordinate(tok string) (float32, error) {
	if !isDecimalFloat(tok) {
		return 0, fmt.Errorf("%w: coordinate %q", mesh.ErrNumericParse, tok)
	}
	x, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		// Overflow rounds to Inf
		if errors.Is(err, strconv.ErrRange) {
			logger.Warn("coordinate outside float32 range",
				zap.String("token", tok), zap.Float64("value", x))
			return float32(x), nil
		}
		return 0, fmt.Errorf("%w: coordinate %q", mesh.ErrNumericParse, tok)
	}
	return float32(x), nil
}

func isDecimalFloat(tok string) bool {
	if strings.ContainsRune(tok, '_') {
		return false
	}
	body := strings.TrimLeft(tok, "+-")
	if len(tok)-len(body) > 1 {
		return false
	}
	return !strings.HasPrefix(body, "0x") && !strings.HasPrefix(body, "0X")
}

func parseIndex(tok string) (int, error) {
	digits := tok
	if len(digits) > 1 && digits[0] == '+' {
		digits = digits[1:]
	}
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", mesh.ErrNumericParse, tok)
	}
	if u > math.MaxInt {
		// Can never address a vertex, the resolver rejects it
		return math.MaxInt, nil
	}
	return int(u), nil
}
