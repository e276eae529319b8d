package descfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// File is the generic parse result of a points-description text file: a
// header block of KEY = VALUE pairs, the fixed per-column tags observed
// in the data block (empty string where a column is always bare), and the
// raw string value of every row's every column.
type File struct {
	Headers map[string]string
	Tags    []string
	Rows    [][]string
}

// Parse reads a descfile from r. Comments (`#...`) and blank lines are
// ignored everywhere; the header block ends at the literal line `DATA`.
func Parse(r io.Reader) (*File, error) {
	f := &File{Headers: map[string]string{}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inHeader := true
	for sc.Scan() {
		line := stripComment(sc.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if inHeader {
			if line == "DATA" {
				inHeader = false
				continue
			}
			k, v, ok := strings.Cut(line, "=")
			if !ok {
				return nil, fmt.Errorf("descfile: header line %q missing '=': %w", line, ErrBadHeaderValue)
			}
			f.Headers[strings.TrimSpace(k)] = strings.Trim(strings.TrimSpace(v), `"`)
			continue
		}

		fields := strings.Fields(line)
		row := make([]string, len(fields))
		for i, field := range fields {
			tag, val, tagged := strings.Cut(field, ":")
			if !tagged {
				row[i] = field
				continue
			}
			row[i] = val
			if err := f.fixTag(i, tag); err != nil {
				return nil, err
			}
		}

		if len(f.Rows) > 0 && len(row) != len(f.Rows[0]) {
			return nil, fmt.Errorf("descfile: row %d has %d columns, want %d: %w", len(f.Rows), len(row), len(f.Rows[0]), ErrColumnMismatch)
		}
		f.Rows = append(f.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return f, nil
}

// fixTag records tag as column i's fixed tag, or errors if a different
// tag was already recorded there.
func (f *File) fixTag(i int, tag string) error {
	for len(f.Tags) <= i {
		f.Tags = append(f.Tags, "")
	}
	if f.Tags[i] == "" {
		f.Tags[i] = tag
		return nil
	}
	if f.Tags[i] != tag {
		return fmt.Errorf("descfile: column %d tagged both %q and %q: %w", i, f.Tags[i], tag, ErrColumnMismatch)
	}
	return nil
}

// Write renders f back to the text format, headers first (insertion
// order is not preserved; callers needing stable output should not rely
// on map iteration order for anything but round-trip correctness), then
// DATA, then one line per row with tags re-attached where recorded.
func (f *File) Write(w io.Writer) error {
	for k, v := range f.Headers {
		if _, err := fmt.Fprintf(w, "%s = %s\n", k, v); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "DATA"); err != nil {
		return err
	}

	for _, row := range f.Rows {
		fields := make([]string, len(row))
		for i, val := range row {
			if i < len(f.Tags) && f.Tags[i] != "" {
				fields[i] = f.Tags[i] + ":" + val
			} else {
				fields[i] = val
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}

	return nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
