package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
)

// DefaultPath is the data file read from the working directory
const DefaultPath = "data.json"

// Keys of a series object in the data file
const (
	KeyRS     = "rs"
	KeyRSI    = "rsi"
	KeyRSIEMA = "rsi_ema"
)

var (
	ErrFileNotFound      = errors.New("data file not found")
	ErrParse             = errors.New("malformed JSON")
	ErrInvalidSeriesData = errors.New("invalid series data")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Series - a pair of chronologically ordered (oldest first) RS and RSI sequences
type Series struct {
	RS  []float64 `validate:"required,min=1"`
	RSI []float64 `validate:"required,min=1"`
}

// Len returns the number of (rs, rsi) points
func (s Series) Len() int {
	return len(s.RS)
}

// Validate checks that both sequences are present, non-empty and of equal length.
// rsiKey is only used to name the RSI sequence in the error.
func (s Series) Validate(rsiKey string) error {
	if err := validate.Struct(s); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			key := KeyRS
			if fe.StructField() == "RSI" {
				key = rsiKey
			}
			switch fe.Tag() {
			case "required":
				return fmt.Errorf("%w: missing %q", ErrInvalidSeriesData, key)
			case "min":
				return fmt.Errorf("%w: %q is empty", ErrInvalidSeriesData, key)
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidSeriesData, err)
	}
	if len(s.RS) != len(s.RSI) {
		return fmt.Errorf("%w: %q has %d values, %q has %d",
			ErrInvalidSeriesData, KeyRS, len(s.RS), rsiKey, len(s.RSI))
	}
	return nil
}

// Entry - a named series
type Entry struct {
	Name   string
	Series Series
}

// Dataset keeps the series in the order they appear in the data file.
// Color assignment and drawing follow this order.
type Dataset []Entry

// Names returns stock identifiers in dataset order
func (d Dataset) Names() []string {
	names := make([]string, 0, len(d))
	for _, entry := range d {
		names = append(names, entry.Name)
	}
	return names
}

// Validate checks the whole dataset: it must be non-empty, identifiers must be unique
// and every series must be valid
func (d Dataset) Validate(rsiKey string) error {
	if len(d) == 0 {
		return fmt.Errorf("%w: dataset is empty", ErrInvalidSeriesData)
	}
	seen := make(map[string]bool, len(d))
	for _, entry := range d {
		if seen[entry.Name] {
			return fmt.Errorf("%w: duplicate series %q", ErrInvalidSeriesData, entry.Name)
		}
		seen[entry.Name] = true
		if err := entry.Series.Validate(rsiKey); err != nil {
			return fmt.Errorf("series %q: %w", entry.Name, err)
		}
	}
	return nil
}

// Load reads the data file at path. rsiKey selects which RSI sequence
// (KeyRSI or KeyRSIEMA) is paired with "rs".
func Load(path string, rsiKey string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return Parse(file, rsiKey)
}

// Parse decodes a data document. The whole payload is checked for syntax first,
// then the top-level object is walked key by key so that the dataset order
// matches the document.
func Parse(r io.Reader, rsiKey string) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrInvalidSeriesData)
	}

	var dataset Dataset
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		name, _ := tok.(string)

		var fields map[string]json.RawMessage
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("%w: series %q must be an object", ErrInvalidSeriesData, name)
		}
		series, err := decodeSeries(fields, rsiKey)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", name, err)
		}
		dataset = append(dataset, Entry{Name: name, Series: series})
	}

	if err := dataset.Validate(rsiKey); err != nil {
		return nil, err
	}
	return dataset, nil
}

func decodeSeries(fields map[string]json.RawMessage, rsiKey string) (Series, error) {
	rs, err := decodeValues(fields, KeyRS)
	if err != nil {
		return Series{}, err
	}
	rsi, err := decodeValues(fields, rsiKey)
	if err != nil {
		return Series{}, err
	}
	series := Series{RS: rs, RSI: rsi}
	return series, series.Validate(rsiKey)
}

func decodeValues(fields map[string]json.RawMessage, key string) ([]float64, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrInvalidSeriesData, key)
	}
	var values []float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: %q must be an array of numbers", ErrInvalidSeriesData, key)
	}
	return values, nil
}
