package readval

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// RecordSize is the size of one encoded integer in binary input.
const RecordSize = 8

// Int64Get decodes the first 8 bytes of p.
//
// Requires p be at least 8 bytes long.
func Int64Get(p []byte) int64 {
	return int64(binary.LittleEndian.Uint64(p))
}

// Int64Put stores n to the first 8 bytes of p, the inverse of Int64Get.
func Int64Put(p []byte, n int64) {
	binary.LittleEndian.PutUint64(p, uint64(n))
}

// Binary reads fixed-size little-endian two's-complement records.
type Binary struct {
	r     io.Reader
	buf   [RecordSize]byte
	count int
}

var _ Source = (*Binary)(nil)

// NewBinary reads RecordSize-byte records from r.
func NewBinary(r io.Reader) *Binary {
	return &Binary{r: r}
}

// Int decodes the next record. A value that does not fit in an int (only
// possible where int is 32 bits) yields ErrNotInteger.
func (b *Binary) Int() (int, error) {
	n, err := io.ReadFull(b.r, b.buf[:])
	switch {
	case err == io.EOF:
		return 0, errors.Wrapf(ErrExhausted, "after %d records", b.count)
	case err == io.ErrUnexpectedEOF:
		return 0, errors.Wrapf(ErrTruncated, "record %d has %d of %d bytes",
			b.count, n, RecordSize)
	case err != nil:
		return 0, errors.Wrap(err, "reading binary input")
	}
	v := Int64Get(b.buf[:])
	if int64(int(v)) != v {
		return 0, errors.Wrapf(ErrNotInteger, "record %d (%d) overflows int", b.count, v)
	}
	b.count++
	return int(v), nil
}

// EncodeBinary renders vals in the format Binary reads.
func EncodeBinary(vals ...int) []byte {
	p := make([]byte, RecordSize*len(vals))
	for i, v := range vals {
		Int64Put(p[i*RecordSize:], int64(v))
	}
	return p
}
