// Package dataset provides the sample record type driven through the
// containers by the CLI, together with its descriptor, a random generator
// and YAML loading.
package dataset

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

// TypeSize is the fixed width of the Type field, terminator included.
const TypeSize = 32

// priceFactor scales generated ids into prices.
const priceFactor = 3.141593

// Sentinel errors.
var (
	ErrTypeTooLong = errors.New("record type too long")
	ErrEmptyFile   = errors.New("dataset file holds no records")
)

// Record is one dataset row.
type Record struct {
	ID    int32   `yaml:"id"`
	Type  string  `yaml:"type"`
	Price float32 `yaml:"price"`
}

// String renders the record as a fixed-width row.
func (r Record) String() string {
	return fmt.Sprintf("%4d  %32s  %4f", r.ID, r.Type, r.Price)
}

// Label returns the short name used when drawing trees.
func Label(r Record) string {
	return r.Type
}

// CompareByID orders records by ID.
func CompareByID(a, b Record) int {
	return cmp.Compare(a.ID, b.ID)
}

// CompareID orders a record against a bare ID, for heterogeneous search.
func CompareID(r Record, id int32) int {
	return cmp.Compare(r.ID, id)
}

// Copy copies src into dst, refusing types wider than the fixed field.
func Copy(dst *Record, src Record) error {
	if len(src.Type) >= TypeSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTypeTooLong, len(src.Type), TypeSize-1)
	}

	*dst = src

	return nil
}

// Swap exchanges two records in place.
func Swap(a, b *Record) {
	*a, *b = *b, *a
}

// Descriptor returns the ID-ordered descriptor for records.
func Descriptor() elem.Descriptor[Record] {
	return elem.Descriptor[Record]{
		Compare: CompareByID,
		Swap:    Swap,
		Copy:    Copy,
	}
}

// Generate returns n records with IDs drawn from [1, n]. Duplicates are
// expected.
func Generate(rng *rand.Rand, n int) []Record {
	out := make([]Record, n)

	for i := range out {
		id := int32(rng.IntN(n) + 1) //nolint:gosec // n is bounded by configuration.

		out[i] = Record{
			ID:    id,
			Type:  fmt.Sprintf("value : %d", id),
			Price: float32(float64(id) * priceFactor),
		}
	}

	return out
}

// Load reads a YAML sequence of records.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []Record

	unmarshalErr := yaml.Unmarshal(data, &records)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal dataset %s: %w", path, unmarshalErr)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return records, nil
}

// Save writes records as a YAML sequence.
func Save(path string, records []Record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	writeErr := os.WriteFile(path, data, 0o600)
	if writeErr != nil {
		return fmt.Errorf("write dataset: %w", writeErr)
	}

	return nil
}
