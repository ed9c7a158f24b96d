package pool

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLockedReader(t *testing.T) {
	const (
		readers = 8
		size    = 64
	)
	source := make([]byte, readers*size)
	for i := range source {
		source[i] = byte(i)
	}
	r := NewLockedReader(bytes.NewReader(source))

	chunks := make([][]byte, readers)
	var eg errgroup.Group
	for i := range chunks {
		i := i
		eg.Go(func() error {
			chunks[i] = make([]byte, size)
			_, err := io.ReadFull(r, chunks[i])
			return err
		})
	}
	require.NoError(t, eg.Wait())

	// every byte of the source was read exactly once
	seen := make(map[byte]int, len(source))
	for _, chunk := range chunks {
		for _, b := range chunk {
			seen[b]++
		}
	}
	assert.Len(t, seen, 256)
	for _, count := range seen {
		assert.Equal(t, len(source)/256, count)
	}

	_, err := r.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
}
