package pixelpack

import (
	"math/rand"
	"testing"
)

func benchmarkData(size int) []byte {
	data := make([]byte, size)
	rand.New(rand.NewSource(42)).Read(data)
	return data
}

func BenchmarkPack64KB(b *testing.B) {
	data := benchmarkData(64 * 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pack(data)
	}
}

func BenchmarkUnpack64KB(b *testing.B) {
	img := Pack(benchmarkData(64 * 1024))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Unpack(img, nil); err != nil {
			b.Fatalf("Unpack failed: %v", err)
		}
	}
}
