// SPDX-License-Identifier: MIT

package off_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/e8poly/d8"
	"github.com/katalvlaran/e8poly/e8"
	"github.com/katalvlaran/e8poly/off"
	"github.com/katalvlaran/e8poly/point"
	"github.com/stretchr/testify/require"
)

var exact = off.WithEnumOptions(e8.WithExactTraversal())

func TestFaceTypes(t *testing.T) {
	ft := off.FaceTypes(e8.A0.Set())
	require.Equal(t, []e8.MirrorSet{e8.Empty}, ft[0])
	require.Equal(t, []e8.MirrorSet{e8.A0.Set()}, ft[1])
	require.Equal(t, []e8.MirrorSet{e8.Of(e8.A0, e8.A1)}, ft[2])
	require.Equal(t, []e8.MirrorSet{e8.All}, ft[8])

	for _, types := range off.FaceTypes(e8.Of(e8.A1, e8.C)) {
		for i := 1; i < len(types); i++ {
			require.Less(t, types[i-1], types[i])
		}
	}
}

func TestFaceCenter(t *testing.T) {
	require.Equal(t, e8.A0.Set(), off.FaceCenter(e8.A0.Set(), e8.Empty))
	require.Equal(t, e8.A1.Set(), off.FaceCenter(e8.A0.Set(), e8.A0.Set()))
	require.Equal(t, e8.Of(e8.A3, e8.C, e8.B1), off.FaceCenter(e8.M.Set(), e8.M.Set()))
	require.Equal(t, e8.Empty, off.FaceCenter(e8.M.Set(), e8.All))
}

func TestFVector421(t *testing.T) {
	want := [off.MaxDim + 1]uint64{240, 6720, 60480, 241920, 483840, 483840, 207360, 19440, 1}
	require.Equal(t, want, off.FVector(e8.A0.Set()))
}

// Every convex 8-polytope has f0 − f1 + ... − f7 = 0.
func TestFVectorEuler(t *testing.T) {
	for s := range e8.Sets() {
		if s.IsEmpty() {
			continue
		}
		f := off.FVector(s)
		var chi int64
		for k := 0; k < off.MaxDim; k++ {
			if k%2 == 0 {
				chi += int64(f[k])
			} else {
				chi -= int64(f[k])
			}
		}
		require.Zero(t, chi, "Euler characteristic of %v (f = %v)", s, f)
		require.Equal(t, s.VertexCount(), f[0])
	}
}

func pointSetRoundTrip(t *testing.T, v d8.Vec8) {
	t.Helper()
	seed := point.New(v)
	ps := off.NewPointSet([]e8.OrbitSample{{Point: seed, Transform: e8.Identity()}})
	require.Equal(t, seed.Orbit.Size(), ps.Len())
	i := uint64(0)
	for p, tr := range ps.All() {
		require.True(t, tr.D.EvenSigns())
		require.Equal(t, p, tr.Apply(seed))
		idx, err := ps.Index(p)
		require.NoError(t, err)
		require.Equal(t, i, idx)
		i++
	}
	require.Equal(t, ps.Len(), i)
}

func TestPointSet(t *testing.T) {
	pointSetRoundTrip(t, d8.Vec8{1, 2, 2, 2, 3, 3, 4, 4})
	pointSetRoundTrip(t, d8.Vec8{1, 1, 1, 1, 1, 1, 1, 1})
	pointSetRoundTrip(t, d8.Vec8{0, 0, 0, 0, 0, 0, 2, 2})
	pointSetRoundTrip(t, d8.Vec8{2, -1, 2, 4, -3, 3, 2, 4})
}

func TestPointSetOffsets(t *testing.T) {
	orbits, err := e8.A0.Set().VertexOrbits(e8.WithSeed(3))
	require.NoError(t, err)
	ps := off.NewPointSet(orbits)
	require.Equal(t, uint64(240), ps.Len())
	require.Equal(t, 2, ps.Orbits())

	seed := e8.A0.Set().Vertex()
	i := uint64(0)
	for p, tr := range ps.All() {
		require.Equal(t, p, tr.Apply(seed))
		idx, err := ps.Index(p)
		require.NoError(t, err)
		require.Equal(t, i, idx)
		i++
	}

	_, err = ps.Index(point.New(d8.Vec8{0, 0, 0, 0, 0, 0, 0, 4}))
	require.ErrorIs(t, err, off.ErrUnknownOrbit)
}

func TestBuildCounts(t *testing.T) {
	for _, s := range []e8.MirrorSet{e8.A0.Set(), e8.M.Set(), e8.Of(e8.B0, e8.C)} {
		m, err := off.Build(s, exact)
		require.NoError(t, err)
		require.Equal(t, off.FVector(s), m.Counts(), "%v", s)
		require.Equal(t, s, m.Active())
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, off.Write(&buf, e8.Empty, exact))
	want := "8OFF\n1 0 0 0 0 0 0 0 \n\n" +
		"# Vertices\n0 0 0 0 0 0 0 0\n\n" +
		"# Faces\n\n" +
		"# 3-faces\n\n# 4-faces\n\n# 5-faces\n\n# 6-faces\n\n# 7-faces\n\n"
	require.Equal(t, want, buf.String())
}

var errFull = errors.New("sink full")

// limitWriter accepts max bytes and then fails.
type limitWriter struct {
	buf bytes.Buffer
	max int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.max - w.buf.Len()
	if len(p) <= room {
		return w.buf.Write(p)
	}
	w.buf.Write(p[:room])
	return room, errFull
}

func countLine(f [off.MaxDim + 1]uint64) string {
	var b strings.Builder
	for _, k := range []int{0, 2, 1, 3, 4, 5, 6, 7} {
		b.WriteString(strconv.FormatUint(f[k], 10))
		b.WriteByte(' ')
	}
	return b.String()
}

func requireVertexLine(t *testing.T, line string) {
	t.Helper()
	fields := strings.Fields(line)
	require.Len(t, fields, d8.Dim, "vertex line %q", line)
	for _, f := range fields {
		_, err := strconv.Atoi(f)
		require.NoError(t, err)
	}
}

func TestWriteHeadM(t *testing.T) {
	w := &limitWriter{max: 1 << 20}
	err := off.Write(w, e8.M.Set(), exact)
	require.Equal(t, errFull, err, "sink errors are returned unchanged")

	lines := strings.Split(w.buf.String(), "\n")
	lines = lines[:len(lines)-1] // last line may be cut short
	require.Equal(t, "8OFF", lines[0])
	require.Equal(t, countLine(off.FVector(e8.M.Set())), lines[1])
	require.Equal(t, "", lines[2])
	require.Equal(t, "# Vertices", lines[3])
	require.Greater(t, len(lines), 1000)
	for _, l := range lines[4:] {
		requireVertexLine(t, l)
	}
}

// TestWrite421 streams the whole 4_21 mesh and checks every section.
func TestWrite421(t *testing.T) {
	if testing.Short() {
		t.Skip("writes about 1.5M records")
	}
	active := e8.A0.Set()
	f := off.FVector(active)

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(off.Write(pw, active, exact))
	}()

	sc := bufio.NewScanner(pr)
	sc.Buffer(make([]byte, 1<<16), 1<<20)
	next := func() string {
		require.True(t, sc.Scan(), "unexpected end: %v", sc.Err())
		return sc.Text()
	}
	require.Equal(t, "8OFF", next())
	require.Equal(t, countLine(f), next())
	require.Equal(t, "", next())

	require.Equal(t, "# Vertices", next())
	for i := uint64(0); i < f[0]; i++ {
		requireVertexLine(t, next())
	}
	require.Equal(t, "", next())

	section := func(title string, n, bound uint64) {
		require.Equal(t, title, next())
		for i := uint64(0); i < n; i++ {
			fields := strings.Fields(next())
			cnt, err := strconv.Atoi(fields[0])
			require.NoError(t, err)
			require.Len(t, fields, cnt+1)
			seen := make(map[uint64]bool, cnt)
			for _, s := range fields[1:] {
				idx, err := strconv.ParseUint(s, 10, 64)
				require.NoError(t, err)
				require.Less(t, idx, bound)
				require.False(t, seen[idx], "repeated part in %q", title)
				seen[idx] = true
			}
		}
		require.Equal(t, "", next())
	}
	section("# Faces", f[2], f[0])
	for k := 3; k < off.MaxDim; k++ {
		section("# "+strconv.Itoa(k)+"-faces", f[k], f[k-1])
	}
	require.False(t, sc.Scan())
	require.NoError(t, sc.Err())
}

func TestEstimateSize(t *testing.T) {
	n, err := off.EstimateSize(e8.Empty, exact)
	require.NoError(t, err)
	require.Equal(t, uint64(20), n)

	if testing.Short() {
		t.Skip("writes the 4_21 mesh")
	}
	m, err := off.Build(e8.A0.Set(), exact)
	require.NoError(t, err)
	est, err := m.EstimateSize()
	require.NoError(t, err)
	written, err := m.WriteTo(io.Discard)
	require.NoError(t, err)
	require.InDelta(t, float64(written), float64(est), float64(written)/2)
}

func TestOptions(t *testing.T) {
	_, err := off.Build(e8.A0.Set(), off.WithEnumOptions(nil))
	require.ErrorIs(t, err, off.ErrOptionViolation)
	_, err = off.Build(e8.A0.Set(), off.WithEnumOptions(e8.WithMaxDraws(-1)))
	require.ErrorIs(t, err, e8.ErrOptionViolation)
}
