package bguid

import "testing"

func TestNewRandom(t *testing.T) {
	u, err := NewRandom()
	if err != nil {
		t.Fatalf("NewRandom() error = %v", err)
	}

	if got := u[6] >> 4; got != 4 {
		t.Errorf("version bits = %d, want 4", got)
	}
	if got := u[8] & 0xc0; got != 0x80 {
		t.Errorf("variant bits = %#x, want 0x80", got)
	}
}

func TestNewRandom_Unique(t *testing.T) {
	seen := make(map[UUID]bool, 1000)
	for i := 0; i < 1000; i++ {
		u := Must(NewRandom())
		if seen[u] {
			t.Fatalf("duplicate UUID generated: %s", u)
		}
		seen[u] = true
	}
}

func TestMust_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(Nil, ErrInvalidFormat)
}
