package unichrom

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Result is the outcome of a reconstruction
type Result struct {
	// local time, ex:
	// "2006-01-02 15:04:05.999999999 -0700 MST"
	// https://golang.org/pkg/time/#Time.String
	Time string `json:"time"`

	// Input is the source of the fragment set: a file path or a library set name
	Input string `json:"input"`

	// Count of distinct fragments in the input set
	Count int `json:"fragmentCount"`

	// Chromosome reconstructed from the fragments
	Chromosome string `json:"chromosome"`

	// Length of the chromosome
	Length int `json:"length"`

	// Validated is whether every input fragment is a substring of the
	// chromosome. Necessary for a correct reconstruction, not sufficient
	Validated bool `json:"validated"`
}

// write the reconstruction result to the fs at the output path
//
// filename is the output file to write to; when it's empty the result is
// printed to stdout instead
func write(filename, input string, fragments []string, chromosome string) (*Result, error) {
	result := &Result{
		Time:       time.Now().String(),
		Input:      input,
		Count:      len(dedupe(fragments)),
		Chromosome: chromosome,
		Length:     len(chromosome),
		Validated:  validate(fragments, chromosome),
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %v", err)
	}

	if filename == "" {
		fmt.Println(string(output))
		return result, nil
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return nil, fmt.Errorf("failed to write the output: %v", err)
	}
	return result, nil
}
