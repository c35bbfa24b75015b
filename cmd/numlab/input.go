// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AlekseyKhaleev/Comp-Math/matrix"
)

// systemFile is the YAML layout of a linear system:
//
//	a: [[3.11, -1.66, -0.6], [-1.65, 3.51, -0.78], [0.6, 0.78, -1.87]]
//	b: [-0.92, 2.57, 1.65]
type systemFile struct {
	A [][]float64 `yaml:"a"`
	B []float64   `yaml:"b"`
}

// tableFile is the YAML layout of an interpolation table with query points.
type tableFile struct {
	X  []float64 `yaml:"x"`
	Y  []float64 `yaml:"y"`
	At []float64 `yaml:"at"`
}

var errEmptyInput = errors.New("input file has no data")

// readYAML decodes path into out, rejecting unknown keys.
func readYAML(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

// loadSystem reads a system file and builds the coefficient matrix.
func loadSystem(path string) (*matrix.Dense, []float64, error) {
	var sf systemFile
	if err := readYAML(path, &sf); err != nil {
		return nil, nil, err
	}
	if len(sf.A) == 0 {
		return nil, nil, fmt.Errorf("%s: matrix a: %w", path, errEmptyInput)
	}
	if len(sf.B) == 0 {
		return nil, nil, fmt.Errorf("%s: right-hand side b: %w", path, errEmptyInput)
	}
	a, err := matrix.NewFromRows(sf.A)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: matrix a: %w", path, err)
	}

	return a, sf.B, nil
}

// loadTable reads an interpolation table.
func loadTable(path string) (*tableFile, error) {
	var tf tableFile
	if err := readYAML(path, &tf); err != nil {
		return nil, err
	}
	if len(tf.X) == 0 || len(tf.At) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyInput)
	}

	return &tf, nil
}
