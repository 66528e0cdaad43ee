package domain

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	m "covsight.dev/pkg/covsight/internal/model"
)

// EncodeTraceFile serializes the trace file in one of the pass-through
// formats. HTML is not a pass-through format.
func EncodeTraceFile(file m.TraceFile, format m.OutputType) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch format {
	case m.OutputJSON:
		out, err = json.MarshalIndent(file, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case m.OutputTOML:
		out, err = toml.Marshal(file)
	case m.OutputXML:
		out, err = encodeXML(file)
	case m.OutputYAML:
		out, err = encodeYAML(file)
	default:
		err = fmt.Errorf("output type %s has no trace file encoding", format)
	}

	if err != nil {
		return nil, encodingError(err)
	}

	return out, nil
}

func encodeXML(file m.TraceFile) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	if err := enc.Encode(file); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func encodeYAML(file m.TraceFile) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(file); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
