package summarystore

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFixtures reads a Dataset from a YAML file. Unknown keys are rejected
// so that typos in fixture files surface instead of silently dropping data.
//
//	drivers:
//	  - name: Driver A
//	    deliveries: 52
//	partners:
//	  - name: Partner X
//	    orders: 130
//	alerts:
//	  - partner: Pharmacy 1
//	    item: Insulin
//	    stock: 3
func LoadFixtures(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(raw)
}

// ParseFixtures decodes a YAML fixtures document.
func ParseFixtures(raw []byte) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}
