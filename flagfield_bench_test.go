package flagfield

import "testing"

// Run with: go test -bench=. -benchmem

func BenchmarkSet(b *testing.B) {
	ff := NewUnchecked[uint](1024)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ff.Set(uint(i) % 1024)
	}
}

func BenchmarkSetStrict(b *testing.B) {
	ff := NewStrict[uint](1024)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ff.Set(uint(i) % 1024)
	}
}

func BenchmarkIsSet(b *testing.B) {
	ff := NewUnchecked[uint](1024, 3, 511, 1023)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ff.IsSet(uint(i) % 1024)
	}
}

func BenchmarkCount(b *testing.B) {
	ff := NewUnchecked[uint](4096).SetAll()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ff.Count()
	}
}

func BenchmarkUnionWith(b *testing.B) {
	ff := NewUnchecked[uint](4096, 1, 100, 4000)
	other := NewUnchecked[uint](4096, 2, 200, 3999)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ff.UnionWith(other)
	}
}

func BenchmarkAcquire(b *testing.B) {
	ff := NewUnchecked[uint](4096)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := ff.Acquire(); !ok {
			ff.ClearAll()
		}
	}
}

func BenchmarkIndices(b *testing.B) {
	ff := NewUnchecked[uint](4096)
	for i := uint(0); i < 4096; i += 7 {
		ff.Set(i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range ff.Indices() {
		}
	}
}
