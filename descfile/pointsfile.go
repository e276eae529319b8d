package descfile

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/astreproj/astre/trajectory"
)

// PointsFile is a descfile.File interpreted under the points-file
// convention: header type = "PointsFile v.1.0", integer width/height/uid,
// and a data block whose first column is an integer-valued frame index
// followed by x, y (and, on output, a trajectory-id column).
type PointsFile struct {
	Width, Height, UID int
	Frames             []trajectory.Frame
}

const pointsFileType = "PointsFile v.1.0"

// ParsePointsFile parses r as a points file and converts its rows into
// trajectory.Frame slices, indexed by the value of each row's frame
// column; frame indices below the largest one that have no row become
// empty frames. Points are assigned to a frame's index in the order their
// row appears in the file.
func ParsePointsFile(r io.Reader) (*PointsFile, error) {
	f, err := Parse(r)
	if err != nil {
		return nil, err
	}

	typ, ok := f.Headers["type"]
	if !ok {
		return nil, fmt.Errorf("descfile: %w: type", ErrMissingHeader)
	}
	if typ != pointsFileType {
		return nil, fmt.Errorf("descfile: unsupported type %q: %w", typ, ErrBadHeaderValue)
	}

	width, err := requireIntHeader(f, "width")
	if err != nil {
		return nil, err
	}
	height, err := requireIntHeader(f, "height")
	if err != nil {
		return nil, err
	}
	uid, err := requireIntHeader(f, "uid")
	if err != nil {
		return nil, err
	}

	pf := &PointsFile{Width: width, Height: height, UID: uid}

	for _, row := range f.Rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("descfile: row has %d columns, want at least 3 (f x y): %w", len(row), ErrColumnMismatch)
		}

		fv, err := strconv.ParseFloat(row[0], 64)
		if err != nil || fv != math.Trunc(fv) {
			return nil, fmt.Errorf("descfile: frame column %q: %w", row[0], ErrMalformedFrame)
		}
		frameIdx := int(fv)

		x, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("descfile: x column %q: %w", row[1], ErrBadHeaderValue)
		}
		y, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("descfile: y column %q: %w", row[2], ErrBadHeaderValue)
		}

		for len(pf.Frames) <= frameIdx {
			pf.Frames = append(pf.Frames, nil)
		}
		pf.Frames[frameIdx] = append(pf.Frames[frameIdx], trajectory.Point{X: x, Y: y})
	}

	return pf, nil
}

func requireIntHeader(f *File, key string) (int, error) {
	v, ok := f.Headers[key]
	if !ok {
		return 0, fmt.Errorf("descfile: %w: %s", ErrMissingHeader, key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("descfile: header %s=%q: %w", key, v, ErrBadHeaderValue)
	}
	return n, nil
}

// WriteTrajectories renders pf's frames back to the points-file format,
// with one `traj:<t>:lNFA = <value>` header per trajectory and a
// trailing trajectory-id column on every data row: the id of the
// trajectory that claims that point, or -1 if unclaimed.
func WriteTrajectories(pf *PointsFile, trajs []trajectory.Trajectory, w io.Writer) error {
	owner := make(map[[2]int]int)
	for t, tr := range trajs {
		for _, st := range tr.Steps {
			if st.Kind == trajectory.StepRef {
				owner[[2]int{st.Frame, st.Index}] = t
			}
		}
	}

	f := &File{
		Headers: map[string]string{
			"type":   `"` + pointsFileType + `"`,
			"width":  strconv.Itoa(pf.Width),
			"height": strconv.Itoa(pf.Height),
			"uid":    strconv.Itoa(pf.UID),
		},
		Tags: []string{"f", "x", "y", "traj"},
	}
	for t, tr := range trajs {
		f.Headers[fmt.Sprintf("traj:%d:lNFA", t)] = strconv.FormatFloat(tr.LogNFA, 'g', -1, 64)
	}

	for k, frame := range pf.Frames {
		for i, p := range frame {
			id := -1
			if t, ok := owner[[2]int{k, i}]; ok {
				id = t
			}
			f.Rows = append(f.Rows, []string{
				strconv.Itoa(k),
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
				strconv.Itoa(id),
			})
		}
	}

	return f.Write(w)
}
