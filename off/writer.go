// SPDX-License-Identifier: MIT

package off

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/e8poly/e8"
	"github.com/katalvlaran/e8poly/point"
)

// countOrder is the layout of the count line: vertices, 2-faces, edges,
// then 3- to 7-faces.
var countOrder = [...]int{0, 2, 1, 3, 4, 5, 6, 7}

// Write builds the mesh of active and writes it to w in 8OFF format.
func Write(w io.Writer, active e8.MirrorSet, opts ...Option) error {
	m, err := Build(active, opts...)
	if err != nil {
		return err
	}
	_, err = m.WriteTo(w)
	return err
}

// WriteTo writes the mesh in 8OFF format and returns the number of bytes
// accepted by w. An error from w is returned unchanged; other failures are
// wrapped with the mirror set.
func (m *Mesh) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	lw := &lineWriter{bw: bufio.NewWriterSize(cw, 1<<16)}
	err := m.write(lw)
	if err == nil {
		err = lw.bw.Flush()
	}
	if cw.err != nil {
		return cw.n, cw.err
	}
	if err != nil {
		return cw.n, fmt.Errorf("WriteTo(%v): %w", m.active, err)
	}
	c := m.Counts()
	m.opts.Logger.Info("8OFF written",
		zap.Stringer("mirrors", m.active),
		zap.Int64("bytes", cw.n),
		zap.Uint64s("faces", c[:MaxDim]),
	)
	return cw.n, nil
}

func (m *Mesh) write(lw *lineWriter) error {
	c := m.Counts()
	lw.buf = append(lw.buf[:0], "8OFF\n"...)
	for _, k := range countOrder {
		lw.buf = strconv.AppendUint(lw.buf, c[k], 10)
		lw.buf = append(lw.buf, ' ')
	}
	lw.buf = append(lw.buf, "\n\n# Vertices\n"...)
	if err := lw.flush(); err != nil {
		return err
	}

	for p := range m.points[0].All() {
		for i, x := range p.Vec() {
			if i > 0 {
				lw.buf = append(lw.buf, ' ')
			}
			lw.buf = strconv.AppendInt(lw.buf, int64(x), 10)
		}
		lw.buf = append(lw.buf, '\n')
		if err := lw.flush(); err != nil {
			return err
		}
	}

	if err := lw.str("\n# Faces\n"); err != nil {
		return err
	}
	for _, ft := range m.faceTypes[2] {
		m.opts.Logger.Debug("writing faces", zap.Int("dim", 2), zap.Stringer("type", ft))
		poly, err := m.polygon(ft)
		if err != nil {
			return err
		}
		if err := m.records(lw, ft, poly, m.points[0], true); err != nil {
			return err
		}
	}
	if err := lw.str("\n"); err != nil {
		return err
	}

	for k := 3; k < MaxDim; k++ {
		if err := lw.str("# " + strconv.Itoa(k) + "-faces\n"); err != nil {
			return err
		}
		for _, ft := range m.faceTypes[k] {
			m.opts.Logger.Debug("writing faces", zap.Int("dim", k), zap.Stringer("type", ft))
			subs, err := m.subfaces(ft, k)
			if err != nil {
				return err
			}
			if err := m.records(lw, ft, subs, m.points[k-1], false); err != nil {
				return err
			}
		}
		if err := lw.str("\n"); err != nil {
			return err
		}
	}
	return nil
}

// records writes one line per face of type ft: the count of parts, then
// the index in within of every part moved onto that face. A polygon cycle
// starts at its smallest index and steps towards the smaller neighbour;
// subface indices are sorted. Either way a line depends only on the face,
// not on which transform reached it.
func (m *Mesh) records(lw *lineWriter, ft e8.MirrorSet, parts []point.Point, within *PointSet, cycle bool) error {
	if err := m.opts.Ctx.Err(); err != nil {
		return err
	}
	centers := NewPointSet(m.centers[FaceCenter(m.active, ft)])
	idx := make([]uint64, len(parts))
	out := make([]uint64, len(parts))
	for _, t := range centers.All() {
		for i, p := range parts {
			n, err := within.Index(t.Apply(p))
			if err != nil {
				return fmt.Errorf("face %v: %w", ft, err)
			}
			idx[i] = n
		}
		if cycle {
			normalizeCycle(out, idx)
		} else {
			copy(out, idx)
			slices.Sort(out)
		}
		lw.buf = strconv.AppendInt(lw.buf[:0], int64(len(out)), 10)
		for _, n := range out {
			lw.buf = append(lw.buf, ' ')
			lw.buf = strconv.AppendUint(lw.buf, n, 10)
		}
		lw.buf = append(lw.buf, '\n')
		if err := lw.flush(); err != nil {
			return err
		}
	}
	return nil
}

// normalizeCycle writes into dst the rotation or reflection of cyc that
// starts at its minimum and continues with the smaller of its two
// neighbours. len(dst) must equal len(cyc).
func normalizeCycle(dst, cyc []uint64) {
	n := len(cyc)
	if n == 0 {
		return
	}
	lo := 0
	for i, v := range cyc {
		if v < cyc[lo] {
			lo = i
		}
	}
	step := 1
	if cyc[(lo+n-1)%n] < cyc[(lo+1)%n] {
		step = n - 1
	}
	for i := range dst {
		dst[i] = cyc[(lo+i*step)%n]
	}
}

// lineWriter assembles one line in buf before handing it to bw.
type lineWriter struct {
	bw  *bufio.Writer
	buf []byte
}

func (lw *lineWriter) flush() error {
	_, err := lw.bw.Write(lw.buf)
	lw.buf = lw.buf[:0]
	return err
}

func (lw *lineWriter) str(s string) error {
	_, err := lw.bw.WriteString(s)
	return err
}

// countingWriter counts accepted bytes and keeps the first error of w.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err != nil && c.err == nil {
		c.err = err
	}
	return n, err
}
