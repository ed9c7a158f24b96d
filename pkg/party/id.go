package party

import (
	"io"
)

// ID represents a unique identifier for a participant in our scheme.
//
// You should think of this as a human-readable name, or an address.
// Both parties must refer to each other with the same IDs.
type ID string

// WriteTo implements io.WriterTo interface.
func (id ID) WriteTo(w io.Writer) (int64, error) {
	if id == "" {
		return 0, io.ErrUnexpectedEOF
	}
	n, err := w.Write([]byte(id))
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (ID) Domain() string {
	return "ID"
}
