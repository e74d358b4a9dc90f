// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package similarity

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

var gzipMagic = []byte{0x1f, 0x8b}

// readBuffer sizes the buffered reader placed in front of the artifact.
const readBuffer = 64 * 1024

// Load reads a similarity matrix from a .npy file, optionally gzip
// compressed. Compression is detected from the content, not the extension.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open similarity artifact: %w", err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read similarity artifact %s: %w", path, err)
	}
	return m, nil
}

// Read decodes a square 2-D .npy payload from r. A gzip stream is
// transparently decompressed.
func Read(r io.Reader) (*Matrix, error) {
	br := bufio.NewReaderSize(r, readBuffer)

	peek, err := br.Peek(len(gzipMagic))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	if bytes.Equal(peek, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %v", ErrInvalidArtifact, err)
		}
		defer zr.Close()
		br = bufio.NewReaderSize(zr, readBuffer)
	}

	return readNPY(br)
}

func readNPY(r io.Reader) (*Matrix, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	shape := nr.Header.Descr.Shape
	if len(shape) != 2 || shape[0] != shape[1] || shape[0] < 0 {
		return nil, fmt.Errorf("%w: shape %v is not square 2-D", ErrInvalidArtifact, shape)
	}
	n := shape[0]
	if n > 0 && n > math.MaxInt/n {
		return nil, fmt.Errorf("%w: shape %v overflows", ErrInvalidArtifact, shape)
	}

	data, err := readValues(nr)
	if err != nil {
		return nil, err
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: read %d values for shape %v", ErrInvalidArtifact, len(data), shape)
	}

	if nr.Header.Descr.Fortran {
		data = transpose(n, data)
	}
	return New(n, data)
}

// readValues decodes the payload as float64. float32 artifacts are widened.
func readValues(nr *npyio.Reader) ([]float64, error) {
	switch dtype := nr.Header.Descr.Type; dtype {
	case "<f8", ">f8":
		var data []float64
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
		}
		return data, nil
	case "<f4", ">f4":
		var narrow []float32
		if err := nr.Read(&narrow); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
		}
		data := make([]float64, len(narrow))
		for i, v := range narrow {
			data[i] = float64(v)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: unsupported dtype %q", ErrInvalidArtifact, dtype)
	}
}

func transpose(n int, data []float64) []float64 {
	out := make([]float64, len(data))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = data[j*n+i]
		}
	}
	return out
}

// Write encodes m as a row-major float64 .npy payload. When compress is set
// the payload is gzip-wrapped.
func Write(w io.Writer, m *Matrix, compress bool) error {
	if m.n == 0 {
		return fmt.Errorf("%w: cannot encode an empty matrix", ErrInvalidArtifact)
	}
	dense := mat.NewDense(m.n, m.n, m.data)

	if !compress {
		return npyio.Write(w, dense)
	}
	zw := gzip.NewWriter(w)
	if err := npyio.Write(zw, dense); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}
