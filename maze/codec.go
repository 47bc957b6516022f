package maze

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	"os"
)

// headerSize is the size of the width, height and sides fields.
const headerSize = 12

// Binary layout, little-endian:
//
//	offset 0:  u32 width
//	offset 4:  u32 height
//	offset 8:  u32 sides
//	offset 12: one bit per door, MSB first, cells row-major from y = 0,
//	           doors in canonical order, zero padded to a byte boundary.

// bitstreamSize is the number of bytes holding the doors of the grid.
func bitstreamSize(width, height, sides int) int {
	return (width*height*sides + 7) / 8
}

// MarshalBinary encodes the maze in its file format.
func (m *Maze) MarshalBinary() ([]byte, error) {
	data := make([]byte, headerSize+bitstreamSize(m.width, m.height, m.Sides()))
	binary.LittleEndian.PutUint32(data[0:], uint32(m.width))
	binary.LittleEndian.PutUint32(data[4:], uint32(m.height))
	binary.LittleEndian.PutUint32(data[8:], uint32(m.Sides()))

	bits := data[headerSize:]
	bit := 0
	for _, c := range m.cells {
		for _, open := range c.doors {
			if open {
				bits[bit/8] |= 0x80 >> (bit % 8)
			}
			bit++
		}
	}

	return data, nil
}

// WriteTo writes the encoded maze to w.
func (m *Maze) WriteTo(w io.Writer) (int64, error) {
	data, err := m.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Save writes the maze to path, replacing any existing content.
func (m *Maze) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if _, err := m.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Decode rebuilds a maze from its encoded form. The maze uses the default
// strategy since the format does not record it.
func Decode(data []byte, opts ...Option) (*Maze, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidFormat, len(data))
	}

	width := binary.LittleEndian.Uint32(data[0:])
	height := binary.LittleEndian.Uint32(data[4:])
	sides := binary.LittleEndian.Uint32(data[8:])

	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d grid", ErrInvalidFormat, width, height)
	}
	if sides != TriangleSides && sides != SquareSides && sides != HexagonSides {
		return nil, fmt.Errorf("%w: %d sides", ErrInvalidFormat, sides)
	}

	// Guard the allocation below against absurd headers.
	stream := data[headerSize:]
	hi, cells := bits.Mul64(uint64(width), uint64(height))
	hi2, doors := bits.Mul64(cells, uint64(sides))
	if hi != 0 || hi2 != 0 || doors > uint64(len(stream))*8 {
		return nil, fmt.Errorf("%w: %d bytes of doors for a %dx%d %s grid",
			ErrInvalidFormat, len(stream), width, height, ShapeName(int(sides)))
	}

	m, err := New(int(width), int(height), int(sides), DefaultStrategy, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	m.Close()
	bit := 0
	for i := range m.cells {
		for door := range m.cells[i].doors {
			m.cells[i].doors[door] = stream[bit/8]&(0x80>>(bit%8)) != 0
			bit++
		}
	}

	return m, nil
}

// Read decodes a maze from r.
func Read(r io.Reader, opts ...Option) (*Maze, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Decode(buf.Bytes(), opts...)
}

// Load reads the maze stored at path.
func Load(path string, opts ...Option) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Decode(data, opts...)
}
