// Package export writes built geometry as Wavefront OBJ, optionally zstd-compressed.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/Faultbox/hexterrain/internal/engine/mesh"
)

// WriteOBJ writes every batch as its own object named "<name>_<index>".
// Vertices, texture coordinates and normals share one index per vertex.
func WriteOBJ(w io.Writer, name string, batches []*mesh.Batch) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s: %d batches\n", name, len(batches))
	offset := 1
	for i, b := range batches {
		fmt.Fprintf(bw, "o %s_%d\n", name, i)
		for _, v := range b.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		for _, uv := range b.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
		for _, n := range b.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for k := 0; k+2 < len(b.Triangles); k += 3 {
			a := int(b.Triangles[k]) + offset
			c := int(b.Triangles[k+1]) + offset
			d := int(b.Triangles[k+2]) + offset
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, c, c, c, d, d, d)
		}
		offset += len(b.Vertices)
	}

	return bw.Flush()
}

// file closes the encoder before the file underneath it.
type file struct {
	*zstd.Encoder
	f *os.File
}

func (z *file) Close() error {
	if err := z.Encoder.Close(); err != nil {
		z.f.Close()
		return err
	}
	return z.f.Close()
}

// Create opens path for writing, creating parent directories.
// With compress set, everything written is zstd-compressed.
func Create(path string, compress bool) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating export file: %w", err)
	}
	if !compress {
		return f, nil
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	return &file{Encoder: enc, f: f}, nil
}

// Open opens an exported file for reading, decompressing it when compressed is set.
func Open(path string, compressed bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !compressed {
		return f, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	return &reader{dec: dec, f: f}, nil
}

type reader struct {
	dec *zstd.Decoder
	f   *os.File
}

func (r *reader) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}

func (r *reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}
