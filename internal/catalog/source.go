package catalog

import (
	"fmt"
	"io"
	"os"
)

// contents reads a catalog source argument into one text blob per
// underlying source. A string is a file path when such a file exists
// and raw catalog text otherwise; []byte and io.Reader are read
// directly; slices flatten in order.
func contents(source any) ([]string, error) {
	switch s := source.(type) {
	case string:
		if info, err := os.Stat(s); err == nil && !info.IsDir() {
			data, err := os.ReadFile(s)
			if err != nil {
				return nil, fmt.Errorf("read catalog %s: %w", s, err)
			}
			return []string{string(data)}, nil
		}
		return []string{s}, nil
	case []byte:
		return []string{string(s)}, nil
	case io.Reader:
		data, err := io.ReadAll(s)
		if err != nil {
			return nil, fmt.Errorf("read catalog source: %w", err)
		}
		return []string{string(data)}, nil
	case []string:
		var out []string
		for _, sub := range s {
			blobs, err := contents(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, blobs...)
		}
		return out, nil
	case []any:
		var out []string
		for _, sub := range s {
			blobs, err := contents(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, blobs...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported catalog source type %T", source)
}
