package matlab

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/scigolib/matlab/types"
)

func TestRoundTrip_V5_SimpleDouble(t *testing.T) {
	path := t.TempDir() + "/x.mat"
	writer, err := Create(path, Version5)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a, err := types.NewMatrix("x", 1, 1, false, types.Double)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	a.SetDouble(0, 0, 3.14159)

	if err := writer.WriteVariable(a); err != nil {
		t.Fatalf("WriteVariable() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := openFile(t, path)
	if err != nil {
		t.Fatalf("openFile() error = %v", err)
	}
	got := f.FindByName("x")
	if got == nil {
		t.Fatal("FindByName(\"x\") = nil")
	}
	if v := got.Data.Real.([]float64)[0]; v != 3.14159 {
		t.Errorf("x = %v, want 3.14159", v)
	}
}

func TestRoundTrip_V5_Int32(t *testing.T) {
	path := t.TempDir() + "/int32.mat"
	writer, err := Create(path, Version5)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a, err := types.NewMatrix("n", 1, 4, false, types.Int32)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	for i, v := range []int32{-1, 0, 1, 2147483647} {
		a.SetInt32(0, i, v)
	}

	if err := writer.WriteVariable(a); err != nil {
		t.Fatalf("WriteVariable() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := openFile(t, path)
	if err != nil {
		t.Fatalf("openFile() error = %v", err)
	}
	got := f.FindByName("n")
	if got == nil {
		t.Fatal("FindByName(\"n\") = nil")
	}
	real := got.Data.Real.([]int32)
	want := []int32{-1, 0, 1, 2147483647}
	for i := range want {
		if real[i] != want[i] {
			t.Errorf("real[%d] = %d, want %d", i, real[i], want[i])
		}
	}
}

func TestRoundTrip_V5_Complex(t *testing.T) {
	path := t.TempDir() + "/complex.mat"
	writer, err := Create(path, Version5)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a, err := types.NewMatrix("z", 1, 2, true, types.Double)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	a.SetDouble(0, 0, 1)
	a.SetDoubleImag(0, 0, 2)
	a.SetDouble(0, 1, 3)
	a.SetDoubleImag(0, 1, -4)

	if err := writer.WriteVariable(a); err != nil {
		t.Fatalf("WriteVariable() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := openFile(t, path)
	if err != nil {
		t.Fatalf("openFile() error = %v", err)
	}
	got := f.FindByName("z")
	if got == nil {
		t.Fatal("FindByName(\"z\") = nil")
	}
	if !got.Flags.Complex {
		t.Fatal("Complex = false, want true")
	}
	real := got.Data.Real.([]float64)
	imag := got.Data.Imag.([]float64)
	if real[0] != 1 || imag[0] != 2 || real[1] != 3 || imag[1] != -4 {
		t.Errorf("real=%v imag=%v, want real=[1 3] imag=[2 -4]", real, imag)
	}
}

func TestRoundTrip_V5_Matrix2x3(t *testing.T) {
	path := t.TempDir() + "/matrix.mat"
	writer, err := Create(path, Version5)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a, err := types.NewMatrix("m", 2, 3, false, types.Double)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			a.SetDouble(r, c, float64(r*10+c))
		}
	}

	if err := writer.WriteVariable(a); err != nil {
		t.Fatalf("WriteVariable() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := openFile(t, path)
	if err != nil {
		t.Fatalf("openFile() error = %v", err)
	}
	got := f.FindByName("m")
	if got == nil {
		t.Fatal("FindByName(\"m\") = nil")
	}
	if got.Rows() != 2 || got.Cols() != 3 {
		t.Errorf("dims = (%d,%d), want (2,3)", got.Rows(), got.Cols())
	}
	real := got.Data.Real.([]float64)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			idx := r + c*2
			want := float64(r*10 + c)
			if real[idx] != want {
				t.Errorf("(%d,%d) = %v, want %v", r, c, real[idx], want)
			}
		}
	}
}

func TestRoundTrip_V5_BigEndian(t *testing.T) {
	path := t.TempDir() + "/big.mat"
	writer, err := Create(path, Version5, WithEndianness(binary.BigEndian))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a, _ := types.NewMatrix("b", 1, 1, false, types.Double)
	a.SetDouble(0, 0, 9)

	if err := writer.WriteVariable(a); err != nil {
		t.Fatalf("WriteVariable() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := openFile(t, path)
	if err != nil {
		t.Fatalf("openFile() error = %v", err)
	}
	if f.Endian != "MI" {
		t.Errorf("Endian = %q, want %q for big-endian file", f.Endian, "MI")
	}
}

func TestRoundTrip_V5_PublicAPI(t *testing.T) {
	path := t.TempDir() + "/public.mat"
	writer, err := Create(path, Version5, WithDescription("public API check"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a, _ := types.NewMatrix("v", 1, 1, false, types.Double)
	a.SetDouble(0, 0, 1)
	if err := writer.WriteVariable(a); err != nil {
		t.Fatalf("WriteVariable() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := openFile(t, path)
	if err != nil {
		t.Fatalf("openFile() error = %v", err)
	}
	if f.Description == "" {
		t.Error("Description is empty")
	}
}

func TestRoundTrip_V5_MultipleVariables(t *testing.T) {
	path := t.TempDir() + "/multi.mat"
	writer, err := Create(path, Version5)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	names := []string{"alpha", "beta", "gamma"}
	for i, name := range names {
		a, _ := types.NewMatrix(name, 1, 1, false, types.Double)
		a.SetDouble(0, 0, float64(i))
		if err := writer.WriteVariable(a); err != nil {
			t.Fatalf("WriteVariable(%s) error = %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := openFile(t, path)
	if err != nil {
		t.Fatalf("openFile() error = %v", err)
	}
	if got := f.Names(); len(got) != len(names) {
		t.Fatalf("Names() = %v, want %v", got, names)
	}
	for _, name := range names {
		if f.FindByName(name) == nil {
			t.Errorf("FindByName(%q) = nil", name)
		}
	}
}

func openFile(t *testing.T, path string) (*MatFile, error) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Open(f)
}
