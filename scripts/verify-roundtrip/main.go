// Package main - verification script for v5 write/read round-tripping.
//
// This script verifies that:
// 1. Writer can create valid v5 files
// 2. Reader can parse files created by writer
// 3. Data integrity is preserved (no corruption)
//
// Usage: go run scripts/verify-roundtrip/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scigolib/matlab"
	"github.com/scigolib/matlab/types"
)

func main() {
	fmt.Println("v5 Write/Read Round-Trip Verification")
	fmt.Println("======================================")
	fmt.Println()

	testData := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	testVar, err := types.NewMatrix("test_data", 1, len(testData), false, types.Double)
	if err != nil {
		fmt.Printf("FAILED: NewMatrix() error: %v\n", err)
		os.Exit(1)
	}
	for i, v := range testData {
		testVar.SetDouble(0, i, v)
	}

	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "test_roundtrip_v5.mat")
	defer os.Remove(testFile) //nolint:errcheck // cleanup temporary test file

	fmt.Println("Step 1: Write test data to a v5 file")
	fmt.Printf("   File: %s\n", testFile)
	fmt.Printf("   Data: %v\n\n", testData)

	writer, err := matlab.Create(testFile, matlab.Version5)
	if err != nil {
		fmt.Printf("FAILED: Create() error: %v\n", err)
		os.Exit(1)
	}

	if err := writer.WriteVariable(testVar); err != nil {
		fmt.Printf("FAILED: WriteVariable() error: %v\n", err)
		os.Exit(1)
	}

	if err := writer.Close(); err != nil {
		fmt.Printf("FAILED: Close() error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Step 1 PASSED: File written successfully")
	fmt.Println()

	fmt.Println("Step 2: Read back the written file")

	file, err := os.Open(testFile)
	if err != nil {
		fmt.Printf("FAILED: Cannot open file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close() //nolint:errcheck // test script, cleanup on exit

	matFile, err := matlab.Open(file)
	if err != nil {
		fmt.Printf("FAILED: Open() error: %v\n", err)
		fmt.Println("\nREADER BUG: Cannot parse file created by writer!")
		os.Exit(1)
	}

	fmt.Println("Step 2 PASSED: File parsed successfully")
	fmt.Println()

	fmt.Println("Step 3: Verify data integrity")

	if len(matFile.Arrays) != 1 {
		fmt.Printf("FAILED: Expected 1 array, got %d\n", len(matFile.Arrays))
		os.Exit(1)
	}

	readVar := matFile.Arrays[0]

	if readVar.Name != testVar.Name {
		fmt.Printf("FAILED: Array name mismatch\n")
		fmt.Printf("   Expected: %s\n", testVar.Name)
		fmt.Printf("   Got: %s\n", readVar.Name)
		os.Exit(1)
	}

	if readVar.Flags.Class != testVar.Flags.Class {
		fmt.Printf("FAILED: Class mismatch\n")
		fmt.Printf("   Expected: %v\n", testVar.Flags.Class)
		fmt.Printf("   Got: %v\n", readVar.Flags.Class)
		os.Exit(1)
	}

	if len(readVar.Size) != len(testVar.Size) {
		fmt.Printf("FAILED: Dimensions length mismatch\n")
		fmt.Printf("   Expected: %v\n", testVar.Size)
		fmt.Printf("   Got: %v\n", readVar.Size)
		os.Exit(1)
	}

	for i := range testVar.Size {
		if readVar.Size[i] != testVar.Size[i] {
			fmt.Printf("FAILED: Dimension[%d] mismatch\n", i)
			fmt.Printf("   Expected: %d\n", testVar.Size[i])
			fmt.Printf("   Got: %d\n", readVar.Size[i])
			os.Exit(1)
		}
	}

	readData, ok := readVar.Data.Real.([]float64)
	if !ok {
		fmt.Printf("FAILED: Data type assertion failed\n")
		fmt.Printf("   Expected: []float64\n")
		fmt.Printf("   Got: %T\n", readVar.Data.Real)
		os.Exit(1)
	}

	if len(readData) != len(testData) {
		fmt.Printf("FAILED: Data length mismatch\n")
		fmt.Printf("   Expected: %d\n", len(testData))
		fmt.Printf("   Got: %d\n", len(readData))
		os.Exit(1)
	}

	for i := range testData {
		if readData[i] != testData[i] {
			fmt.Printf("FAILED: Data[%d] mismatch\n", i)
			fmt.Printf("   Expected: %f\n", testData[i])
			fmt.Printf("   Got: %f\n", readData[i])
			os.Exit(1)
		}
	}

	fmt.Println("Step 3 PASSED: Data integrity verified")
	fmt.Println()

	fmt.Println("=======================================")
	fmt.Println("ALL TESTS PASSED")
	fmt.Println("=======================================")
	fmt.Println("\nVerified:")
	fmt.Println("  - Writer creates valid v5 files")
	fmt.Println("  - Reader can parse written files")
	fmt.Println("  - Data integrity preserved")
	fmt.Println("  - Array metadata preserved")
}
