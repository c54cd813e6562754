// Package dataset loads chart datasets from TOML, JSON, and CSV files.
//
// The canonical format is TOML:
//
//	title = "Languages"
//	scheme = "classic"
//
//	[[items]]
//	id = "go"
//	label = "Go"
//	value = 120
//	group = "backend"
//
// JSON mirrors the same shape. CSV carries one item per row with a header
// row naming the columns (id, label, value, group, color); only id and
// value are required.
//
// Every loaded dataset is validated before it is returned: unique IDs and
// non-negative values are checked here, at the boundary, because the layout
// core itself never validates.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/errors"
)

// Supported dataset file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Extensions lists the file extensions recognized by [Load].
var Extensions = []string{".toml", ".json", ".csv"}

// Load reads and validates a dataset file, detecting the format from the
// file extension.
func Load(path string) (chart.Dataset, error) {
	format, err := formatFor(path)
	if err != nil {
		return chart.Dataset{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return chart.Dataset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
		}
		return chart.Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f, format)
	if err != nil {
		return chart.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Read decodes and validates a dataset from r in the given format.
func Read(r io.Reader, format string) (chart.Dataset, error) {
	var (
		ds  chart.Dataset
		err error
	)
	switch format {
	case FormatTOML:
		ds, err = readTOML(r)
	case FormatJSON:
		ds, err = readJSON(r)
	case FormatCSV:
		ds, err = readCSV(r)
	default:
		return chart.Dataset{}, errors.New(errors.ErrCodeUnsupported, "unsupported dataset format %q", format)
	}
	if err != nil {
		return chart.Dataset{}, err
	}
	if err := ds.Validate(); err != nil {
		return chart.Dataset{}, err
	}
	return ds, nil
}

func formatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unrecognized dataset extension %q (want .toml, .json, or .csv)", filepath.Ext(path))
}

func readTOML(r io.Reader) (chart.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return chart.Dataset{}, err
	}
	var ds chart.Dataset
	if err := toml.Unmarshal(data, &ds); err != nil {
		return chart.Dataset{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode TOML")
	}
	return ds, nil
}

func readJSON(r io.Reader) (chart.Dataset, error) {
	var ds chart.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return chart.Dataset{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode JSON")
	}
	return ds, nil
}

// readCSV decodes one item per row. The header row names the columns; id
// and value are required, label, group, and color optional.
func readCSV(r io.Reader) (chart.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return chart.Dataset{}, nil
	}
	if err != nil {
		return chart.Dataset{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "read CSV header")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["id"]; !ok {
		return chart.Dataset{}, errors.New(errors.ErrCodeInvalidDataset, "CSV header missing id column")
	}
	if _, ok := cols["value"]; !ok {
		return chart.Dataset{}, errors.New(errors.ErrCodeInvalidDataset, "CSV header missing value column")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var ds chart.Dataset
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return chart.Dataset{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "read CSV line %d", line)
		}

		value, err := strconv.ParseFloat(field(row, "value"), 64)
		if err != nil {
			return chart.Dataset{}, errors.Wrap(errors.ErrCodeInvalidItem, err, "CSV line %d: bad value", line)
		}

		ds.Items = append(ds.Items, chart.Item{
			ID:    field(row, "id"),
			Label: field(row, "label"),
			Value: value,
			Group: field(row, "group"),
			Color: field(row, "color"),
		})
	}

	return ds, nil
}
