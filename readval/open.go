package readval

import (
	"io"
	"os"

	"github.com/goose-lang/pairsum/config"
	"github.com/pkg/errors"
)

func noClose() error { return nil }

// Open returns the source described by in. Fixed values win over a path; an
// empty path or "-" reads stdin.
//
// The returned close function must be called once the source is no longer
// needed; it is non-nil whenever err is nil.
func Open(in config.Input, stdin io.Reader) (src Source, closeFn func() error, err error) {
	switch in.Format {
	case config.Text, config.Binary, "":
	default:
		return nil, nil, errors.Errorf("unknown input format %q", in.Format)
	}
	if len(in.Values) > 0 {
		return NewFixed(in.Values...), noClose, nil
	}
	r := stdin
	closeFn = noClose
	if in.Path != "" && in.Path != "-" {
		f, err := os.Open(in.Path)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening input")
		}
		r, closeFn = f, f.Close
	}
	switch in.Format {
	case config.Binary:
		return NewBinary(r), closeFn, nil
	default:
		return NewText(r), closeFn, nil
	}
}
