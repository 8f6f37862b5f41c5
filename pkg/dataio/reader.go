// Package dataio reads labeled numeric rows from delimited text files.
//
// Each non-blank line is one sample: the last field is an integer class
// label and every preceding field is a float feature. Fields are separated
// by commas or by runs of whitespace. The first malformed line aborts the
// read with a DataFormatError naming the 1-based line number.
package dataio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/pkg/config"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/pkg/log"
)

// Load opens path and reads it with Read.
func Load(path, separator string) (dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataset.Dataset{}, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	ds, err := Read(f, separator)
	if err != nil {
		return dataset.Dataset{}, errors.Wrapf(err, "reading %s", path)
	}
	log.GetLoggerWithName("dataio").Debug("Dataset loaded",
		log.OperationKey, log.OperationLoad,
		log.PathKey, path,
		log.SamplesKey, ds.Len(),
		log.FeaturesKey, ds.NumFeatures(),
	)
	return ds, nil
}

// Read parses every row from r. separator is config.SeparatorComma or
// config.SeparatorSpace.
func Read(r io.Reader, separator string) (dataset.Dataset, error) {
	var p parser
	switch separator {
	case config.SeparatorComma:
		if err := p.readComma(r); err != nil {
			return dataset.Dataset{}, err
		}
	case config.SeparatorSpace:
		if err := p.readSpace(r); err != nil {
			return dataset.Dataset{}, err
		}
	default:
		return dataset.Dataset{}, errors.NewValidationError("separator", "must be \"space\" or \"comma\"", separator)
	}
	if len(p.samples) == 0 {
		return dataset.Dataset{}, errors.NewModelError("dataio.Read", "no rows", errors.ErrEmptyData)
	}
	return dataset.FromSamples(p.samples)
}

type parser struct {
	samples []dataset.Sample
	width   int
}

func (p *parser) readComma(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return errors.NewDataFormatError(perr.Line, -1, "", perr.Err.Error())
			}
			return errors.Wrap(err, "reading csv record")
		}
		line, _ := cr.FieldPos(0)
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if err := p.add(line, record); err != nil {
			return err
		}
	}
}

func (p *parser) readSpace(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := p.add(line, fields); err != nil {
			return err
		}
	}
	return errors.Wrap(sc.Err(), "scanning rows")
}

func (p *parser) add(line int, fields []string) error {
	if len(fields) < 2 {
		return errors.NewDataFormatError(line, -1, "", "need at least one feature and a label")
	}
	if p.width == 0 {
		p.width = len(fields)
	} else if len(fields) != p.width {
		return errors.NewDataFormatError(line, -1, "",
			fmt.Sprintf("expected %d fields, got %d", p.width, len(fields)))
	}

	last := len(fields) - 1
	features := make([]float64, last)
	for i, raw := range fields[:last] {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return errors.NewDataFormatError(line, i, raw, "feature is not a number")
		}
		features[i] = v
	}
	label, err := strconv.Atoi(strings.TrimSpace(fields[last]))
	if err != nil {
		return errors.NewDataFormatError(line, last, fields[last], "label is not an integer")
	}

	p.samples = append(p.samples, dataset.Sample{Features: features, Label: label})
	return nil
}
