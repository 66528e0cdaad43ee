package model

import "encoding/xml"

// SourceFile is the report entry for a single source file.
type SourceFile struct {
	Path      []string `json:"path"`
	Content   string   `json:"content"`
	Traces    []Trace  `json:"traces"`
	Covered   int      `json:"covered"`
	Coverable int      `json:"coverable"`
}

// CoverageReport is the serializable root of an HTML report.
type CoverageReport struct {
	Files []SourceFile `json:"files"`
}

// Covered sums the covered units of every file.
func (r CoverageReport) Covered() int {
	total := 0
	for _, file := range r.Files {
		total += file.Covered
	}

	return total
}

// Coverable sums the coverable units of every file.
func (r CoverageReport) Coverable() int {
	total := 0
	for _, file := range r.Files {
		total += file.Coverable
	}

	return total
}

// Percent returns the covered share in the range [0, 100]. A report without
// coverable units is 0%.
func (r CoverageReport) Percent() float64 {
	return percent(r.Covered(), r.Coverable())
}

// Percent returns the covered share of the file in the range [0, 100].
func (f SourceFile) Percent() float64 {
	return percent(f.Covered, f.Coverable)
}

func percent(covered, coverable int) float64 {
	if coverable == 0 {
		return 0
	}

	return float64(covered) / float64(coverable) * 100
}

// TraceFileEntry is one path of a persisted trace file.
type TraceFileEntry struct {
	Path   string  `json:"path" yaml:"path" toml:"path" xml:"path,attr"`
	Traces []Trace `json:"traces" yaml:"traces" toml:"traces" xml:"trace"`
}

// TraceFile is the on-disk shape of a Trace Store, shared by the trace
// loaders and the pass-through exports.
type TraceFile struct {
	XMLName   xml.Name         `json:"-" yaml:"-" toml:"-" xml:"coverage"`
	CI        string           `json:"ci,omitempty" yaml:"ci,omitempty" toml:"ci,omitempty" xml:"ci,attr,omitempty"`
	Covered   int              `json:"covered" yaml:"covered" toml:"covered" xml:"covered,attr"`
	Coverable int              `json:"coverable" yaml:"coverable" toml:"coverable" xml:"coverable,attr"`
	Files     []TraceFileEntry `json:"files" yaml:"files" toml:"files" xml:"file"`
}

// NewTraceFile snapshots store into its persisted shape.
func NewTraceFile(store *TraceStore, ci CiService) TraceFile {
	out := TraceFile{
		Files:     []TraceFileEntry{},
		Covered:   store.TotalCovered(),
		Coverable: store.TotalCoverable(),
	}

	if !ci.IsZero() {
		out.CI = ci.String()
	}

	_ = store.Range(func(path Path, traces []Trace) error {
		out.Files = append(out.Files, TraceFileEntry{Path: string(path), Traces: CloneTraces(traces)})
		return nil
	})

	return out
}

// Store rebuilds a Trace Store from the persisted shape.
func (f TraceFile) Store() *TraceStore {
	store := NewTraceStore()
	for _, entry := range f.Files {
		store.InsertAll(Path(entry.Path), entry.Traces)
	}

	return store
}
