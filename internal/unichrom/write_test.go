package unichrom

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func Test_write(t *testing.T) {
	fragments := []string{
		"ATTAGACCTG",
		"CCTGCCGGAA",
		"AGACCTGCCG",
		"GCCGGAATAC",
	}
	chromosome := "ATTAGACCTGCCGGAATAC"
	out := filepath.Join(t.TempDir(), "rosalind.output.json")

	result, err := write(out, "rosalind.fa", fragments, chromosome)
	if err != nil {
		t.Fatalf("write() error = %v", err)
	}

	if result.Count != 4 {
		t.Errorf("write() counted %d fragments, want 4", result.Count)
	}
	if result.Length != len(chromosome) {
		t.Errorf("write() length = %d, want %d", result.Length, len(chromosome))
	}
	if !result.Validated {
		t.Error("write() marked a correct reconstruction as unvalidated")
	}

	// the written file round-trips to the same result
	dat, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read the output file: %v", err)
	}

	var onDisk Result
	if err := json.Unmarshal(dat, &onDisk); err != nil {
		t.Fatalf("failed to parse the output file: %v", err)
	}
	if onDisk.Chromosome != chromosome {
		t.Errorf("output chromosome = %v, want %v", onDisk.Chromosome, chromosome)
	}
	if onDisk.Input != "rosalind.fa" {
		t.Errorf("output input = %v, want rosalind.fa", onDisk.Input)
	}
}

func Test_write_unvalidated(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.output.json")

	result, err := write(out, "bad.fa", []string{"GGGG"}, "ATTA")
	if err != nil {
		t.Fatalf("write() error = %v", err)
	}
	if result.Validated {
		t.Error("write() validated a chromosome missing a fragment")
	}
}
