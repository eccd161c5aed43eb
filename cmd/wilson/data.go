package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Dataset holds labeled feature vectors.
type Dataset struct {
	Inputs [][]float64 // [num_samples, num_features]
	Labels []string    // [num_samples]
}

// LoadCSV loads a dataset from a CSV file.
//
// CSV Format:
//
//	label,x0,x1,...
//	on,1,1
//	off,0,1
//
// The first row is a header and is skipped. Every row must have the same
// number of columns.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer file.Close()

	ds, err := ReadCSV(file)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", path)
	}
	return ds, nil
}

// ReadCSV parses a dataset in the format described by LoadCSV.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read CSV")
	}

	if len(records) < 2 {
		return nil, errors.New("CSV file is empty or missing header")
	}
	if len(records[0]) < 2 {
		return nil, errors.Errorf("need a label column and at least one feature, got %d columns", len(records[0]))
	}

	// Skip header row
	records = records[1:]

	ds := &Dataset{
		Inputs: make([][]float64, len(records)),
		Labels: make([]string, len(records)),
	}
	for i, record := range records {
		ds.Labels[i] = strings.TrimSpace(record[0])
		ds.Inputs[i], err = parseFeatures(record[1:])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+2)
		}
	}
	return ds, nil
}

// ParseVector parses a comma separated feature vector such as "0.5,1".
func ParseVector(s string) ([]float64, error) {
	return parseFeatures(strings.Split(s, ","))
}

func parseFeatures(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for j, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %d", j)
		}
		out[j] = v
	}
	return out, nil
}
