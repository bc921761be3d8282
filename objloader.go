package wirespin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/smasonuk/wirespin/internal/logger"
)

// LineError describes an input line that was skipped.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseReport collects what the parser had to throw away.
type ParseReport struct {
	Lines          int
	SkippedLines   []*LineError
	DroppedRefs    int // face refs <= 0, empty or non-numeric
	OutOfRangeRefs int // face refs past the last vertex
	IgnoredRecords int // vn, vt, g, comments and friends
}

// Clean reports whether nothing was dropped or skipped.
func (r ParseReport) Clean() bool {
	return len(r.SkippedLines) == 0 && r.DroppedRefs == 0 && r.OutOfRangeRefs == 0
}

// LoadMesh reads an OBJ file. It never returns a nil mesh: when the file
// cannot be opened the mesh is empty and the error says why, so callers can
// check Empty and fall back to a default shape.
func LoadMesh(path string) (*Mesh, error) {
	m, _, err := LoadMeshReport(path)
	return m, err
}

// LoadMeshReport is LoadMesh plus the parse diagnostics.
func LoadMeshReport(path string) (*Mesh, ParseReport, error) {
	file, err := os.Open(path)
	if err != nil {
		logger.Warn("failed to open OBJ file", zap.String("path", path), zap.Error(err))
		return NewMesh(), ParseReport{}, fmt.Errorf("could not open OBJ file %s: %w", path, err)
	}
	defer file.Close()

	m, report, err := ParseMeshReport(file)
	if err != nil {
		return m, report, fmt.Errorf("error reading OBJ file %s: %w", path, err)
	}
	return m, report, nil
}

// ParseMesh reads OBJ records from r. Only v and f records are used.
func ParseMesh(r io.Reader) (*Mesh, error) {
	m, _, err := ParseMeshReport(r)
	return m, err
}

// ParseMeshReport reads OBJ records from r and returns the mesh together with
// a report of skipped lines and dropped face references. Malformed records
// never abort the parse; the only error is a failure of the reader itself, in
// which case the mesh holds everything read up to that point.
func ParseMeshReport(r io.Reader) (*Mesh, ParseReport, error) {
	m := NewMesh()
	var report ParseReport

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		report.Lines++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				le := &LineError{Line: report.Lines, Text: line, Err: err}
				report.SkippedLines = append(report.SkippedLines, le)
				logger.Warn("skipping malformed vertex", zap.Int("line", le.Line), zap.Error(err))
				continue
			}
			m.AddVertex(p)
		case "f":
			face := make([]int, 0, len(fields)-1)
			for _, token := range fields[1:] {
				idx, ok := ParseFaceRef(token)
				if !ok {
					report.DroppedRefs++
					logger.Debug("dropping face reference", zap.Int("line", report.Lines), zap.String("ref", token))
					continue
				}
				face = append(face, idx)
			}
			m.Faces = append(m.Faces, face)
		default:
			report.IgnoredRecords++
		}
	}

	report.OutOfRangeRefs = dropOutOfRange(m)
	if report.OutOfRangeRefs > 0 {
		logger.Warn("dropped face references past the last vertex",
			zap.Int("refs", report.OutOfRangeRefs), zap.Int("vertices", len(m.Vertices)))
	}
	m.DeriveEdges()

	logger.Info("Loaded OBJ",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
		zap.Int("edges", len(m.Edges)),
	)

	if err := scanner.Err(); err != nil {
		return m, report, fmt.Errorf("error reading OBJ source: %w", err)
	}
	return m, report, nil
}

func parseVertex(args []string) (Point3, error) {
	if len(args) < 3 {
		return Point3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(args))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return Point3{}, fmt.Errorf("could not parse coordinate %q: %w", args[i], err)
		}
		xyz[i] = v
	}
	return NewPoint3(xyz[0], xyz[1], xyz[2]), nil
}

// ParseFaceRef extracts the 0-based vertex index from a face token in any of
// the forms "23", "23/1", "23/1/23" or "23//23". Only the field before the
// first slash counts. ok is false for indices <= 0, an empty first field or a
// non-numeric one.
func ParseFaceRef(token string) (int, bool) {
	field, _, _ := strings.Cut(token, "/")
	idx, err := strconv.Atoi(field)
	if err != nil || idx <= 0 {
		return 0, false
	}
	return idx - 1, true
}

// dropOutOfRange removes face indices that point past the final vertex list
// and returns how many were removed.
func dropOutOfRange(m *Mesh) int {
	n := len(m.Vertices)
	dropped := 0
	for fi, face := range m.Faces {
		kept := face[:0]
		for _, idx := range face {
			if idx >= n {
				dropped++
				continue
			}
			kept = append(kept, idx)
		}
		m.Faces[fi] = kept
	}
	return dropped
}
