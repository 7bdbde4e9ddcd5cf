package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MeshData contains a triangle soup loaded from a wavefront OBJ file:
// vertex positions plus indices, three per triangle.
type MeshData struct {
	Positions []core.Vec3
	Indices   []int
}

// TriangleCount returns the number of triangles in the mesh
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// LoadOBJ reads the ASCII wavefront OBJ subset this renderer consumes:
// "v" position records and "f" face records. Faces with more than
// three vertices are fan-triangulated. Normals, texture coordinates,
// groups and materials are ignored.
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ %q: %w", filename, err)
	}
	return mesh, nil
}

// ParseOBJ parses OBJ records from a reader
func ParseOBJ(r io.Reader) (*MeshData, error) {
	mesh := &MeshData{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNum)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				val, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex coordinate %q: %w", lineNum, fields[i+1], err)
				}
				coords[i] = val
			}
			mesh.Positions = append(mesh.Positions, core.NewVec3(coords[0], coords[1], coords[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				idx, err := parseFaceIndex(field, len(mesh.Positions))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				indices = append(indices, idx)
			}
			// Fan triangulation for polygons.
			for i := 1; i+1 < len(indices); i++ {
				mesh.Indices = append(mesh.Indices, indices[0], indices[i], indices[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mesh, nil
}

// parseFaceIndex resolves one face vertex reference ("7", "7/1", or
// "7//3") to a zero-based position index. Negative references count
// back from the end of the position list.
func parseFaceIndex(field string, numPositions int) (int, error) {
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		field = field[:slash]
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", field, err)
	}
	if idx < 0 {
		idx += numPositions
	} else {
		idx--
	}
	if idx < 0 || idx >= numPositions {
		return 0, fmt.Errorf("face index %q out of range", field)
	}
	return idx, nil
}
