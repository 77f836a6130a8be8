// Package main - Generate minimal test MAT-files
//
// This script creates minimal MATLAB test files for testdata/ directory,
// using this module's own v5 writer to generate them (dogfooding).
//
// Usage: go run scripts/generate-testdata/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/scigolib/matlab"
	"github.com/scigolib/matlab/types"
)

func main() {
	fmt.Println("Generating MATLAB test files for testdata/")
	fmt.Println(strings.Repeat("=", 60))

	testdataDir := filepath.Join("testdata", "generated")
	if err := os.MkdirAll(testdataDir, 0755); err != nil {
		log.Fatalf("Failed to create testdata directory: %v", err)
	}

	tests := []struct {
		filename string
		desc     string
		build    func() (*types.Array, error)
	}{
		{
			filename: "simple_double.mat",
			desc:     "Simple 1D double array",
			build: func() (*types.Array, error) {
				a, err := types.NewMatrix("data", 1, 5, false, types.Double)
				if err != nil {
					return nil, err
				}
				for i, v := range []float64{1, 2, 3, 4, 5} {
					a.SetDouble(0, i, v)
				}
				return a, nil
			},
		},
		{
			filename: "simple_int32.mat",
			desc:     "Simple 1D int32 array",
			build: func() (*types.Array, error) {
				a, err := types.NewMatrix("values", 1, 4, false, types.Int32)
				if err != nil {
					return nil, err
				}
				for i, v := range []int32{10, 20, 30, 40} {
					a.SetInt32(0, i, v)
				}
				return a, nil
			},
		},
		{
			filename: "simple_uint8.mat",
			desc:     "Simple 1D uint8 array",
			build: func() (*types.Array, error) {
				a, err := types.NewMatrix("bytes", 1, 3, false, types.Uint8)
				if err != nil {
					return nil, err
				}
				for i, v := range []uint8{255, 128, 0} {
					a.SetUint8(0, i, v)
				}
				return a, nil
			},
		},
		{
			filename: "simple_single.mat",
			desc:     "Simple 1D single (float32) array",
			build: func() (*types.Array, error) {
				a, err := types.NewMatrix("floats", 1, 3, false, types.Single)
				if err != nil {
					return nil, err
				}
				for i, v := range []float32{1.5, 2.5, 3.5} {
					a.SetSingle(0, i, v)
				}
				return a, nil
			},
		},
		{
			filename: "complex.mat",
			desc:     "Complex numbers (1+4i, 2+5i, 3+6i)",
			build: func() (*types.Array, error) {
				a, err := types.NewMatrix("z", 1, 3, true, types.Double)
				if err != nil {
					return nil, err
				}
				real := []float64{1, 2, 3}
				imag := []float64{4, 5, 6}
				for i := range real {
					a.SetDouble(0, i, real[i])
					a.SetDoubleImag(0, i, imag[i])
				}
				return a, nil
			},
		},
		{
			filename: "matrix_2x3.mat",
			desc:     "2x3 matrix (column-major order)",
			build: func() (*types.Array, error) {
				a, err := types.NewMatrix("matrix", 2, 3, false, types.Double)
				if err != nil {
					return nil, err
				}
				values := []float64{1, 2, 3, 4, 5, 6}
				for r := 0; r < 2; r++ {
					for c := 0; c < 3; c++ {
						a.SetDouble(r, c, values[r+c*2])
					}
				}
				return a, nil
			},
		},
		{
			filename: "matrix_3x2.mat",
			desc:     "3x2 matrix (column-major order)",
			build: func() (*types.Array, error) {
				a, err := types.NewMatrix("A", 3, 2, false, types.Double)
				if err != nil {
					return nil, err
				}
				values := []float64{1, 4, 2, 5, 3, 6}
				for r := 0; r < 3; r++ {
					for c := 0; c < 2; c++ {
						a.SetDouble(r, c, values[r+c*3])
					}
				}
				return a, nil
			},
		},
		{
			filename: "scalar.mat",
			desc:     "Scalar value (single element)",
			build: func() (*types.Array, error) {
				a, err := types.NewMatrix("x", 1, 1, false, types.Double)
				if err != nil {
					return nil, err
				}
				a.SetDouble(0, 0, 42)
				return a, nil
			},
		},
	}

	fmt.Println("\nGenerating v5 test files:")
	generated := 0
	for _, test := range tests {
		filename := filepath.Join(testdataDir, test.filename)
		fmt.Printf("  - %s: %s... ", test.filename, test.desc)

		array, err := test.build()
		if err != nil {
			fmt.Printf("FAILED\n    Error: %v\n", err)
			continue
		}

		writer, err := matlab.Create(filename, matlab.Version5)
		if err != nil {
			fmt.Printf("FAILED\n    Error: %v\n", err)
			continue
		}

		if err := writer.WriteVariable(array); err != nil {
			fmt.Printf("FAILED\n    Error: %v\n", err)
			_ = writer.Close() // best effort cleanup on error
			continue
		}

		if err := writer.Close(); err != nil {
			fmt.Printf("FAILED\n    Error: %v\n", err)
			continue
		}

		fmt.Println("OK")
		generated++
	}

	readmePath := filepath.Join(testdataDir, "README.md")
	readme := `# MATLAB Test Data

This directory contains minimal MATLAB v5 files for testing.

## Files

| File | Description | Variable | Type | Dimensions |
|------|-------------|----------|------|------------|
| simple_double.mat | Simple 1D double array | data | double | [1, 5] |
| simple_int32.mat | Simple 1D int32 array | values | int32 | [1, 4] |
| simple_uint8.mat | Simple 1D uint8 array | bytes | uint8 | [1, 3] |
| simple_single.mat | Simple 1D single array | floats | single | [1, 3] |
| complex.mat | Complex numbers | z | double | [1, 3] |
| matrix_2x3.mat | 2x3 matrix | matrix | double | [2, 3] |
| matrix_3x2.mat | 3x2 matrix | A | double | [3, 2] |
| scalar.mat | Scalar value | x | double | [1, 1] |

## Generation

These files were generated using this module's own writer:

` + "```bash" + `
go run scripts/generate-testdata/main.go
` + "```" + `

## Testing

Use these files for:
- Reader integration tests
- Round-trip verification (write -> read -> compare)
- MATLAB compatibility testing

## Notes

- All files are v5 (Level-5 binary) format
- Data is stored in column-major order (MATLAB convention)
- Complex numbers are stored as a real sub-element followed by an imaginary sub-element
`

	if err := os.WriteFile(readmePath, []byte(readme), 0644); err != nil {
		log.Printf("Warning: Failed to create README: %v", err)
	} else {
		fmt.Println("\nCreated testdata/generated/README.md")
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Test data generation complete!")
	fmt.Printf("Generated %d test files in testdata/\n", generated)
}
