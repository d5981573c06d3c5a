package endio

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/endio/block"
	"github.com/arloliu/endio/endian"
	"github.com/arloliu/endio/errs"
	"github.com/arloliu/endio/format"
)

var bothOrders = []struct {
	name   string
	engine endian.EndianEngine
}{
	{name: "BE", engine: endian.GetBigEndianEngine()},
	{name: "LE", engine: endian.GetLittleEndianEngine()},
}

// roundTrip writes values in both orders and reads them back, requiring
// identity either way.
func roundTrip[T Numeric](t *testing.T, values []T) {
	t.Helper()

	for _, o := range bothOrders {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, values, o.engine))
		require.Equal(t, len(values)*elemSize[T](), buf.Len())

		got := make([]T, len(values))
		require.NoError(t, Read(&buf, got, o.engine))
		require.Equal(t, values, got, "order %s", o.name)
	}
}

func TestRoundTripAllTypes(t *testing.T) {
	t.Run("uint8", func(t *testing.T) { roundTrip(t, []uint8{0, 1, 0x7F, 0x80, 0xFF}) })
	t.Run("uint16", func(t *testing.T) { roundTrip(t, []uint16{0, 0x1122, 0xFFFF}) })
	t.Run("uint32", func(t *testing.T) { roundTrip(t, []uint32{0, 0x11223344, 0xFFFFFFFF}) })
	t.Run("uint64", func(t *testing.T) { roundTrip(t, []uint64{0, 0x1122334455667788, math.MaxUint64}) })
	t.Run("int8", func(t *testing.T) { roundTrip(t, []int8{math.MinInt8, -1, 0, 1, math.MaxInt8}) })
	t.Run("int16", func(t *testing.T) { roundTrip(t, []int16{math.MinInt16, -1, 0, math.MaxInt16}) })
	t.Run("int32", func(t *testing.T) { roundTrip(t, []int32{math.MinInt32, -1, 0, math.MaxInt32}) })
	t.Run("int64", func(t *testing.T) { roundTrip(t, []int64{math.MinInt64, -1, 0, math.MaxInt64}) })
	t.Run("float32", func(t *testing.T) {
		roundTrip(t, []float32{0, -0, 3.14159, float32(math.Inf(1)), math.SmallestNonzeroFloat32})
	})
	t.Run("float64", func(t *testing.T) {
		roundTrip(t, []float64{0, 2.718281828, math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64})
	})
}

func TestRoundTripFloatNaNBits(t *testing.T) {
	// NaN payloads must survive bit-exactly even though NaN != NaN.
	values := []uint64{math.Float64bits(math.NaN()), 0x7FF8DEADBEEF0001}
	floats := make([]float64, len(values))
	for i, bits := range values {
		floats[i] = math.Float64frombits(bits)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBE(&buf, floats))

	got := make([]float64, len(floats))
	require.NoError(t, ReadBE(&buf, got))

	for i := range got {
		require.Equal(t, values[i], math.Float64bits(got[i]))
	}
}

func TestWriteConcreteScenario(t *testing.T) {
	values := []uint32{0x11223344, 0x55667788, 0x99AABBCC}

	var be bytes.Buffer
	require.NoError(t, WriteBE(&be, values))
	require.Equal(t, []byte{
		0x11, 0x22, 0x33, 0x44,
		0x55, 0x66, 0x77, 0x88,
		0x99, 0xAA, 0xBB, 0xCC,
	}, be.Bytes())

	var le bytes.Buffer
	require.NoError(t, WriteLE(&le, values))
	require.Equal(t, []byte{
		0x44, 0x33, 0x22, 0x11,
		0x88, 0x77, 0x66, 0x55,
		0xCC, 0xBB, 0xAA, 0x99,
	}, le.Bytes())

	got := make([]uint32, 3)
	require.NoError(t, ReadBE(bytes.NewReader(be.Bytes()), got))
	require.Equal(t, values, got)
}

func TestWriteReadEmptySlice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBE(&buf, []uint64{}))
	require.Zero(t, buf.Len())

	require.NoError(t, ReadLE(&buf, []uint32{}))
}

func TestReadShortStream(t *testing.T) {
	// Six bytes hold one uint32 and a fragment of the next.
	r := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6})

	got := make([]uint32, 3)
	err := ReadBE(r, got)
	require.Error(t, err)
	require.Equal(t, uint32(0x01020304), got[0])
}

func TestWriteShortStream(t *testing.T) {
	err := WriteLE(&truncatingWriter{max: 5}, []uint64{1, 2, 3})
	require.ErrorIs(t, err, io.ErrShortWrite)
}

type truncatingWriter struct {
	written int
	max     int
}

func (w *truncatingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.max {
		n := w.max - w.written
		w.written = w.max
		return n, nil
	}
	w.written += len(p)

	return len(p), nil
}

func TestNamedTypeElements(t *testing.T) {
	// The Numeric constraint admits named types.
	type temperature float32
	roundTrip(t, []temperature{-40, 0, 36.6, 100})
}

func TestMarshalUnmarshal(t *testing.T) {
	values := []int64{math.MinInt64, -12345, 0, 67890, math.MaxInt64}

	for _, o := range bothOrders {
		for _, c := range []format.CompressionType{
			format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
		} {
			blk, err := Marshal(values, o.engine, block.WithCompression(c))
			require.NoError(t, err)

			got, err := Unmarshal[int64](blk, len(values), o.engine, block.WithCompression(c))
			require.NoError(t, err)
			require.Equal(t, values, got, "order %s compression %s", o.name, c)
		}
	}
}

func TestMarshalEmpty(t *testing.T) {
	blk, err := Marshal([]float64{}, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Empty(t, blk)

	got, err := Unmarshal[float64](blk, 0, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUnmarshalTruncated(t *testing.T) {
	blk, err := Marshal([]uint16{1, 2, 3}, endian.GetBigEndianEngine())
	require.NoError(t, err)

	_, err = Unmarshal[uint16](blk, 4, endian.GetBigEndianEngine())
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestElemSize(t *testing.T) {
	require.Equal(t, 1, elemSize[uint8]())
	require.Equal(t, 2, elemSize[int16]())
	require.Equal(t, 4, elemSize[float32]())
	require.Equal(t, 8, elemSize[uint64]())
	require.Equal(t, 8, elemSize[float64]())
}

func BenchmarkWriteTyped(b *testing.B) {
	values := make([]float64, 4096)
	for i := range values {
		values[i] = float64(i) * 0.5
	}

	b.Run("BE", func(b *testing.B) {
		b.SetBytes(int64(len(values) * 8))
		for b.Loop() {
			_ = WriteBE(io.Discard, values)
		}
	})
	b.Run("LE", func(b *testing.B) {
		b.SetBytes(int64(len(values) * 8))
		for b.Loop() {
			_ = WriteLE(io.Discard, values)
		}
	})
}
