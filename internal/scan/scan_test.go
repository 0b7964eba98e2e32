package scan

import (
	"bytes"
	"math"
	"testing"
)

const tol = 1e-9

func TestDensity(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want float64
	}{
		{"empty", nil, 0},
		{"zeros", []byte{0x00, 0x00}, 0},
		{"ones", []byte{0xFF, 0xFF}, 1},
		{"half", []byte{0x0F}, 0.5},
		{"single bit", []byte{0x01, 0x00}, 1.0 / 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Density(tt.data); math.Abs(got-tt.want) > tol {
				t.Errorf("Density = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntropy(t *testing.T) {
	constant := bytes.Repeat([]byte{0x42}, 64)
	if got := Entropy(constant); math.Abs(got) > tol {
		t.Errorf("constant block entropy = %v, want 0", got)
	}

	twoSymbols := append(bytes.Repeat([]byte{0x00}, 32), bytes.Repeat([]byte{0xFF}, 32)...)
	if got := Entropy(twoSymbols); math.Abs(got-1) > tol {
		t.Errorf("two-symbol entropy = %v, want 1", got)
	}

	uniform := make([]byte, 256)
	for i := range uniform {
		uniform[i] = byte(i)
	}
	if got := Entropy(uniform); math.Abs(got-8) > tol {
		t.Errorf("uniform entropy = %v, want 8", got)
	}
}

func TestProfileWindows(t *testing.T) {
	data := append(bytes.Repeat([]byte{0xFF}, 8), bytes.Repeat([]byte{0x00}, 8)...)
	res, err := Profile(bytes.NewReader(data), 2)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if res.Size != 16 || res.Window != 8 {
		t.Fatalf("size/window = %d/%d, want 16/8", res.Size, res.Window)
	}
	if len(res.Density) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(res.Density))
	}
	if math.Abs(res.Density[0]-1) > tol || math.Abs(res.Density[1]) > tol {
		t.Errorf("density = %v, want [1 0]", res.Density)
	}
	if math.Abs(res.Entropy[0]) > tol || math.Abs(res.Entropy[1]) > tol {
		t.Errorf("entropy = %v, want [0 0]", res.Entropy)
	}
}

func TestProfileShortTail(t *testing.T) {
	res, err := Profile(bytes.NewReader(make([]byte, 10)), 4)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	// ceil(10/4) = 3 bytes per window, so windows cover 3+3+3+1 bytes.
	if res.Window != 3 {
		t.Errorf("window = %d, want 3", res.Window)
	}
	if len(res.Density) != 4 {
		t.Errorf("expected 4 windows, got %d", len(res.Density))
	}
}

func TestProfileCapsWindowCount(t *testing.T) {
	data := []byte{0xFF, 0x00, 0xF0, 0x0F}
	res, err := Profile(bytes.NewReader(data), 64)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	want := []float64{1, 0, 0.5, 0.5}
	if len(res.Density) != len(want) {
		t.Fatalf("expected one window per byte, got %d", len(res.Density))
	}
	for i := range want {
		if math.Abs(res.Density[i]-want[i]) > tol {
			t.Errorf("window %d density = %v, want %v", i, res.Density[i], want[i])
		}
	}
}

func TestProfileParallelMatchesDirect(t *testing.T) {
	// 64 windows is past the serial cutoff, so this exercises the
	// worker fan-out.
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte((i * 131) ^ (i >> 3))
	}
	res, err := Profile(bytes.NewReader(data), 64)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if len(res.Density) != 64 || res.Window != 64 {
		t.Fatalf("got %d windows of %d bytes, want 64 of 64", len(res.Density), res.Window)
	}
	for i := range res.Density {
		part := data[i*64 : (i+1)*64]
		if math.Abs(res.Density[i]-Density(part)) > tol {
			t.Fatalf("window %d density = %v, want %v", i, res.Density[i], Density(part))
		}
		if math.Abs(res.Entropy[i]-Entropy(part)) > tol {
			t.Fatalf("window %d entropy = %v, want %v", i, res.Entropy[i], Entropy(part))
		}
	}
}

func TestProfileEmpty(t *testing.T) {
	res, err := Profile(bytes.NewReader(nil), 8)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if res.Size != 0 || len(res.Density) != 0 || len(res.Entropy) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func BenchmarkProfile(b *testing.B) {
	data := make([]byte, 1<<20)
	for i := range data {
		data[i] = byte(i * 31)
	}
	r := bytes.NewReader(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Profile(r, 80); err != nil {
			b.Fatal(err)
		}
	}
}
