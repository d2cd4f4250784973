package cpu

import (
	"testing"

	"github.com/latent-ml/latent/internal/tensor"
)

func TestConv2DKnownValues(t *testing.T) {
	backend := New()

	// 3x3 input, 2x2 ones kernel, stride 1, no padding:
	// each output cell is the sum of a 2x2 window.
	input := newFloat32(t, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, tensor.Shape{1, 1, 3, 3})
	kernel := newFloat32(t, []float32{1, 1, 1, 1}, tensor.Shape{1, 1, 2, 2})

	result := backend.Conv2D(input, kernel, 1, 0)

	if !result.Shape().Equal(tensor.Shape{1, 1, 2, 2}) {
		t.Fatalf("Conv2D shape = %v, want [1 1 2 2]", result.Shape())
	}

	want := []float32{12, 16, 24, 28}
	got := result.AsFloat32()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Conv2D result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConv2DStridePadding(t *testing.T) {
	backend := New()

	// 2x2 input, 1x1 identity kernel, stride 2, padding 1:
	// output is 2x2 sampling the padded corners.
	input := newFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{1, 1, 2, 2})
	kernel := newFloat32(t, []float32{1}, tensor.Shape{1, 1, 1, 1})

	result := backend.Conv2D(input, kernel, 2, 1)

	if !result.Shape().Equal(tensor.Shape{1, 1, 2, 2}) {
		t.Fatalf("Conv2D shape = %v, want [1 1 2 2]", result.Shape())
	}

	// Padded positions contribute zeros; the only sampled input cell
	// at stride 2 from (-1, -1) is (1, 1) = 4.
	want := []float32{0, 0, 0, 4}
	got := result.AsFloat32()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Conv2D result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConv2DMultiChannel(t *testing.T) {
	backend := New()

	// Two input channels, one output channel: the kernel sums both
	// channels of each 1x1 window.
	input := newFloat32(t, []float32{
		// channel 0
		1, 2,
		3, 4,
		// channel 1
		10, 20,
		30, 40,
	}, tensor.Shape{1, 2, 2, 2})
	kernel := newFloat32(t, []float32{1, 1}, tensor.Shape{1, 2, 1, 1})

	result := backend.Conv2D(input, kernel, 1, 0)

	if !result.Shape().Equal(tensor.Shape{1, 1, 2, 2}) {
		t.Fatalf("Conv2D shape = %v, want [1 1 2 2]", result.Shape())
	}

	want := []float32{11, 22, 33, 44}
	got := result.AsFloat32()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Conv2D result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConv2DBatch(t *testing.T) {
	backend := New()

	// Two samples through the same 1x1 doubling kernel.
	input := newFloat32(t, []float32{
		1, 2, 3, 4, // sample 0
		5, 6, 7, 8, // sample 1
	}, tensor.Shape{2, 1, 2, 2})
	kernel := newFloat32(t, []float32{2}, tensor.Shape{1, 1, 1, 1})

	result := backend.Conv2D(input, kernel, 1, 0)

	if !result.Shape().Equal(tensor.Shape{2, 1, 2, 2}) {
		t.Fatalf("Conv2D shape = %v, want [2 1 2 2]", result.Shape())
	}

	want := []float32{2, 4, 6, 8, 10, 12, 14, 16}
	got := result.AsFloat32()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Conv2D result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
