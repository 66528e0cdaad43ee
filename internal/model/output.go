package model

import (
	"fmt"
	"strings"
)

// OutputFile is an optional, explicitly configured destination path.
// The zero value means no override was configured.
type OutputFile struct {
	path Path
}

// ParseOutputFile turns a raw flag or config value into an OutputFile.
// Any string is acceptable; an empty or blank string leaves the override unset.
func ParseOutputFile(raw string) OutputFile {
	if strings.TrimSpace(raw) == "" {
		return OutputFile{}
	}

	return OutputFile{path: Path(raw)}
}

// NewOutputFile builds an override from any path-like value.
func NewOutputFile[P PathLike](p P) OutputFile {
	return ParseOutputFile(string(p))
}

// Path returns the configured override and whether one is set.
func (o OutputFile) Path() (Path, bool) {
	return o.path, o.path != ""
}

// IsSet reports whether an explicit path was configured.
func (o OutputFile) IsSet() bool {
	return o.path != ""
}

// String returns the override or an empty string.
func (o OutputFile) String() string {
	return string(o.path)
}

// OutputType is a report format understood by the export workflow.
type OutputType int

// Supported output types.
const (
	OutputHTML OutputType = iota
	OutputJSON
	OutputTOML
	OutputXML
	OutputYAML
)

var outputTypeNames = map[OutputType]string{
	OutputHTML: "html",
	OutputJSON: "json",
	OutputTOML: "toml",
	OutputXML:  "xml",
	OutputYAML: "yaml",
}

// OutputTypes lists every supported type in declaration order.
func OutputTypes() []OutputType {
	return []OutputType{OutputHTML, OutputJSON, OutputTOML, OutputXML, OutputYAML}
}

// ParseOutputType resolves a case-insensitive format name.
func ParseOutputType(raw string) (OutputType, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range OutputTypes() {
		if outputTypeNames[t] == name {
			return t, nil
		}
	}

	return OutputHTML, fmt.Errorf("unknown output type %q (valid: %s)", raw, strings.Join(OutputTypeNames(), ", "))
}

// OutputTypeNames lists the accepted format names.
func OutputTypeNames() []string {
	names := make([]string, 0, len(outputTypeNames))
	for _, t := range OutputTypes() {
		names = append(names, outputTypeNames[t])
	}

	return names
}

func (t OutputType) String() string {
	if name, ok := outputTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("OutputType(%d)", int(t))
}
