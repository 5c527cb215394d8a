package bguid

import (
	"testing"
)

func BenchmarkNewRandom(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := NewRandom()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkUUID_Beautiful(b *testing.B) {
	u := MustParse("550e8400-e29b-41d4-a716-446655440000")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = u.Beautiful()
	}
}

func BenchmarkParseBeautiful(b *testing.B) {
	s := "1AGX100-3H9PGEM-2KHCH36-1AM8000"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := ParseBeautiful(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToBeautiful(b *testing.B) {
	s := "550e8400-e29b-41d4-a716-446655440000"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := ToBeautiful(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromBeautiful(b *testing.B) {
	s := "1AGX100-3H9PGEM-2KHCH36-1AM8000"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := FromBeautiful(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_String(b *testing.B) {
	u := Must(NewRandom())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = u.String()
	}
}

// full round trip through both text forms
func BenchmarkBeautifulRoundTrip(b *testing.B) {
	u := Must(NewRandom())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		got, err := ParseBeautiful(u.Beautiful())
		if err != nil {
			b.Fatal(err)
		}
		if got != u {
			b.Fatal("round-trip mismatch")
		}
	}
}
