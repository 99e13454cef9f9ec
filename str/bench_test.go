package str

import "testing"

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkPadSetUint(b *testing.B) {
	var mem [16]byte
	s := Wrap(mem[:])

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.PadSetUint(2, 8, uint64(i))
	}
}

func BenchmarkPadSetInt(b *testing.B) {
	var mem [16]byte
	s := Wrap(mem[:])

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.PadSetInt(0, 12, int64(-i))
	}
}

func BenchmarkPadSetFloat(b *testing.B) {
	var mem [16]byte
	s := Wrap(mem[:])

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.PadSetFloat(0, 12, 3, 1234.567)
	}
}

func BenchmarkPadSetLF(b *testing.B) {
	var mem [16]byte
	s := Wrap(mem[:])

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.PadSetLF(0, 12, 3, 1234.567)
	}
}

func BenchmarkSetString(b *testing.B) {
	var mem [32]byte
	s := Wrap(mem[:])

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.SetString(4, 16, "fixed width text")
	}
}

func BenchmarkFloat(b *testing.B) {
	s := New(12)
	_ = s.PadSetFloat(0, 12, 3, 1234.567)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Float(0, 12)
	}
}
