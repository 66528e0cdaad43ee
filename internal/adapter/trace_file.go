package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	m "covsight.dev/pkg/covsight/internal/model"
)

func loadTraceFile(path m.Path, format traceFormat) (*m.TraceStore, error) {
	// #nosec G304 - trace files are passed explicitly by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read trace file: %w", err)
	}

	file, err := decodeTraceFile(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode trace file %s: %w", path, err)
	}

	return file.Store(), nil
}

func decodeTraceFile(data []byte, format traceFormat) (m.TraceFile, error) {
	var file m.TraceFile

	switch format {
	case formatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&file); err != nil {
			return file, err
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return file, err
		}
	case formatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return file, err
		}
	case formatUnknown, formatProfile, formatSQLite:
		return file, ErrUnsupportedTraceFormat
	}

	return file, nil
}
