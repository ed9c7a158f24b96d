package hash

import (
	"bytes"
	"encoding/binary"
	"io"
)

// WriterToWithDomain is a value that can write itself to a hash under a domain.
//
// The domain separates values of different types that happen to encode to the same bytes.
type WriterToWithDomain interface {
	io.WriterTo

	// Domain returns a context string, unique for each implementor.
	Domain() string
}

// writeWithDomain writes `len(domain) || domain || len(data) || data`.
//
// Both lengths are big-endian, 4 bytes for the domain and 8 for the data,
// so two consecutive values can never be re-split into a different pair.
func writeWithDomain(w io.Writer, object WriterToWithDomain) error {
	var data bytes.Buffer
	if _, err := object.WriteTo(&data); err != nil {
		return err
	}
	domain := object.Domain()

	header := make([]byte, 4+len(domain)+8)
	binary.BigEndian.PutUint32(header, uint32(len(domain)))
	copy(header[4:], domain)
	binary.BigEndian.PutUint64(header[4+len(domain):], uint64(data.Len()))
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(data.Bytes())
	return err
}

// BytesWithDomain annotates a chunk of bytes with a domain.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// WriteTo implements io.WriterTo.
func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes)
	return int64(n), err
}

// Domain implements WriterToWithDomain.
func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}
