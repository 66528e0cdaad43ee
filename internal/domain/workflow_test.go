package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"covsight.dev/pkg/covsight/internal/adapter"
	adaptermocks "covsight.dev/pkg/covsight/internal/adapter/mocks"
	controllermocks "covsight.dev/pkg/covsight/internal/controller/mocks"
	m "covsight.dev/pkg/covsight/internal/model"
)

type workflowMocks struct {
	sourceFS *adaptermocks.MockSourceFSAdapter
	outputFS *adaptermocks.MockOutputFSAdapter
	loader   *adaptermocks.MockTraceLoader
	ui       *controllermocks.MockUI
}

func newMockedWorkflow(t *testing.T) (Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		sourceFS: adaptermocks.NewMockSourceFSAdapter(t),
		outputFS: adaptermocks.NewMockOutputFSAdapter(t),
		loader:   adaptermocks.NewMockTraceLoader(t),
		ui:       controllermocks.NewMockUI(t),
	}

	return NewWorkflow(mocks.sourceFS, mocks.outputFS, mocks.loader, mocks.ui), mocks
}

func htmlArgs(traces ...m.Path) ExportArgs {
	return ExportArgs{
		SummaryArgs: SummaryArgs{Traces: traces},
		Format:      m.OutputHTML,
		DefaultName: "covsight-report.html",
	}
}

func TestWorkflow_ExportHTML(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	w := &recordingWriteCloser{}

	mocks.loader.On("LoadAll", mock.Anything, []m.Path{"traces.json"}).Return(scenarioStore(), nil)
	mocks.sourceFS.On("ReadText", m.Path("src/a.rs")).Return("fn a(){}\n", nil)
	mocks.outputFS.On("Create", m.Path("covsight-report.html")).Return(w, nil)
	mocks.ui.On("DisplayExported", mock.Anything, m.Path("covsight-report.html"), m.OutputHTML).Return(nil)

	require.NoError(t, wf.Export(context.Background(), htmlArgs("traces.json")))
	require.True(t, w.closed)

	var report m.CoverageReport
	require.NoError(t, json.Unmarshal([]byte(extractPayload(t, string(w.data))), &report))
	require.Len(t, report.Files, 1)
	assert.Equal(t, []string{"src", "a.rs"}, report.Files[0].Path)
	assert.Equal(t, "fn a(){}\n", report.Files[0].Content)
	assert.Equal(t, 1, report.Files[0].Covered)
	assert.Equal(t, 2, report.Files[0].Coverable)
}

func TestWorkflow_ExportHTML_SourceFailureCreatesNoOutput(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)

	mocks.loader.On("LoadAll", mock.Anything, []m.Path{"traces.json"}).Return(scenarioStore(), nil)
	mocks.sourceFS.On("ReadText", m.Path("src/a.rs")).Return("", fs.ErrPermission)

	err := wf.Export(context.Background(), htmlArgs("traces.json"))
	require.ErrorIs(t, err, ErrSourceRead)
	assert.ErrorIs(t, err, fs.ErrPermission)

	mocks.outputFS.AssertNotCalled(t, "Create", mock.Anything)
	mocks.outputFS.AssertNotCalled(t, "Stdout")
	mocks.ui.AssertNotCalled(t, "DisplayExported", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_ExportHTML_ExistingOutputUntouchedOnFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "report.html")
	writeFile(t, target, "previous report")

	loader := adaptermocks.NewMockTraceLoader(t)
	loader.On("LoadAll", mock.Anything, mock.Anything).Return(scenarioStore(), nil)

	wf := NewWorkflow(
		withSourceRoot(adapter.NewLocalSourceFSAdapter(), m.Path(dir)),
		adapter.NewLocalOutputFSAdapter(),
		loader,
		controllermocks.NewMockUI(t),
	)

	args := htmlArgs("traces.json")
	args.Output = m.ParseOutputFile(target)

	err := wf.Export(context.Background(), args)
	require.ErrorIs(t, err, ErrSourceRead)

	data, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "previous report", string(data))
}

func TestWorkflow_ExportHTML_DestinationFailure(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)

	mocks.loader.On("LoadAll", mock.Anything, mock.Anything).Return(scenarioStore(), nil)
	mocks.sourceFS.On("ReadText", m.Path("src/a.rs")).Return("fn a(){}\n", nil)
	mocks.outputFS.On("Create", m.Path("covsight-report.html")).Return(nil, fs.ErrPermission)

	err := wf.Export(context.Background(), htmlArgs("traces.json"))
	require.ErrorIs(t, err, ErrDestination)
	assert.Contains(t, err.Error(), "covsight-report.html")
}

func TestWorkflow_ExportHTML_Deterministic(t *testing.T) {
	dir := t.TempDir()
	mkdirAll(t, filepath.Join(dir, "src"))
	writeFile(t, filepath.Join(dir, "src", "a.rs"), "fn a(){}\n")
	writeFile(t, filepath.Join(dir, "src", "b.rs"), "fn b(){}\n")

	store := scenarioStore()
	store.Insert("src/b.rs", hitTrace(1, 0))

	render := func(name string) []byte {
		loader := adaptermocks.NewMockTraceLoader(t)
		loader.On("LoadAll", mock.Anything, mock.Anything).Return(store, nil)

		ui := controllermocks.NewMockUI(t)
		ui.On("DisplayExported", mock.Anything, mock.Anything, m.OutputHTML).Return(nil)

		wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalOutputFSAdapter(), loader, ui)

		args := htmlArgs("traces.json")
		args.Root = m.Path(dir)
		args.Output = m.ParseOutputFile(filepath.Join(dir, name))
		require.NoError(t, wf.Export(context.Background(), args))

		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		return data
	}

	assert.Equal(t, render("first.html"), render("second.html"))
}

func TestWorkflow_ExportPassThroughStreams(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	w := &recordingWriteCloser{}

	mocks.loader.On("LoadAll", mock.Anything, mock.Anything).Return(scenarioStore(), nil)
	mocks.outputFS.On("Stdout").Return(w)
	mocks.ui.On("DisplayExported", mock.Anything, StdoutPath, m.OutputJSON).Return(nil)

	args := ExportArgs{
		SummaryArgs: SummaryArgs{Traces: []m.Path{"traces.json"}},
		Format:      m.OutputJSON,
		DefaultName: "covsight-report.html",
		Ci:          m.CiJenkins(),
		ShowSummary: true,
	}

	require.NoError(t, wf.Export(context.Background(), args))

	var decoded m.TraceFile
	require.NoError(t, json.Unmarshal(w.data, &decoded))
	assert.Equal(t, "jenkins", decoded.CI)
	assert.Equal(t, 2, decoded.Coverable)

	mocks.outputFS.AssertNotCalled(t, "Create", mock.Anything)
	mocks.sourceFS.AssertNotCalled(t, "ReadText", mock.Anything)
	mocks.ui.AssertNotCalled(t, "DisplaySummary", mock.Anything, mock.Anything)
}

func TestWorkflow_ExportShowsSummary(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)

	mocks.loader.On("LoadAll", mock.Anything, mock.Anything).Return(scenarioStore(), nil)
	mocks.outputFS.On("Create", m.Path("coverage.yaml")).Return(&recordingWriteCloser{}, nil)
	mocks.ui.On("DisplayExported", mock.Anything, m.Path("coverage.yaml"), m.OutputYAML).Return(nil)
	mocks.ui.On("DisplaySummary", mock.Anything, mock.MatchedBy(func(report m.CoverageReport) bool {
		return len(report.Files) == 1 && report.Covered() == 1 && report.Coverable() == 2
	})).Return(nil)

	args := ExportArgs{
		SummaryArgs: SummaryArgs{Traces: []m.Path{"traces.json"}},
		Format:      m.OutputYAML,
		Output:      m.ParseOutputFile("coverage.yaml"),
		ShowSummary: true,
	}

	require.NoError(t, wf.Export(context.Background(), args))
}

func TestWorkflow_ExportStripPrefix(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)

	store := m.NewTraceStore()
	store.InsertAll("example.com/mod/src/a.rs", []m.Trace{hitTrace(1, 3), hitTrace(2, 0)})

	mocks.loader.On("LoadAll", mock.Anything, mock.Anything).Return(store, nil)
	mocks.sourceFS.On("ReadText", m.Path("src/a.rs")).Return("fn a(){}\n", nil)
	mocks.outputFS.On("Create", m.Path("covsight-report.html")).Return(&recordingWriteCloser{}, nil)
	mocks.ui.On("DisplayExported", mock.Anything, mock.Anything, m.OutputHTML).Return(nil)

	args := htmlArgs("traces.json")
	args.StripPrefix = "example.com/mod"

	require.NoError(t, wf.Export(context.Background(), args))
}

func TestWorkflow_ExportLoadFailure(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	loadErr := errors.New("corrupt trace file")

	mocks.loader.On("LoadAll", mock.Anything, mock.Anything).Return(nil, loadErr)

	err := wf.Export(context.Background(), htmlArgs("traces.json"))
	require.ErrorIs(t, err, loadErr)
	mocks.outputFS.AssertNotCalled(t, "Create", mock.Anything)
}

func TestWorkflow_NoTraceFiles(t *testing.T) {
	wf, _ := newMockedWorkflow(t)

	require.ErrorIs(t, wf.Export(context.Background(), htmlArgs()), ErrNoTraceFiles)
	require.ErrorIs(t, wf.Summary(context.Background(), SummaryArgs{}), ErrNoTraceFiles)
}

func TestWorkflow_Summary(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)

	mocks.loader.On("LoadAll", mock.Anything, []m.Path{"a.out", "b.json"}).Return(scenarioStore(), nil)
	mocks.ui.On("DisplaySummary", mock.Anything, mock.MatchedBy(func(report m.CoverageReport) bool {
		return len(report.Files) == 1 && report.Files[0].Coverable == 2
	})).Return(nil)

	require.NoError(t, wf.Summary(context.Background(), SummaryArgs{Traces: []m.Path{"a.out", "b.json"}}))

	mocks.sourceFS.AssertNotCalled(t, "ReadText", mock.Anything)
}

func TestWorkflow_EndToEndFromTraceFile(t *testing.T) {
	dir := t.TempDir()
	mkdirAll(t, filepath.Join(dir, "src"))
	writeFile(t, filepath.Join(dir, "src", "a.rs"), "fn a(){}\n")
	writeFile(t, filepath.Join(dir, "traces.json"),
		`{"files":[{"path":"src/a.rs","traces":[{"line":1,"address":[],"length":1,"stats":{"Line":3}},{"line":2,"address":[],"length":1,"stats":{"Line":0}}]}]}`)

	var status bytes.Buffer

	ui := controllermocks.NewMockUI(t)
	ui.On("DisplayExported", mock.Anything, mock.Anything, m.OutputHTML).Return(nil).Run(func(args mock.Arguments) {
		status.WriteString(string(args.Get(1).(m.Path)))
	})

	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalOutputFSAdapter(), adapter.NewLocalTraceLoader(), ui)

	args := htmlArgs(m.Path(filepath.Join(dir, "traces.json")))
	args.Root = m.Path(dir)
	args.DefaultName = m.Path(filepath.Join(dir, "covsight-report.html"))

	require.NoError(t, wf.Export(context.Background(), args))
	assert.Equal(t, filepath.Join(dir, "covsight-report.html"), status.String())

	data, err := os.ReadFile(filepath.Join(dir, "covsight-report.html"))
	require.NoError(t, err)

	var report m.CoverageReport
	require.NoError(t, json.Unmarshal([]byte(extractPayload(t, string(data))), &report))
	assert.Equal(t, m.CoverageReport{Files: []m.SourceFile{{
		Path:    []string{"src", "a.rs"},
		Content: "fn a(){}\n",
		Traces: []m.Trace{
			{Line: 1, Address: []uint64{}, Length: 1, Stats: m.CoverageStat{Line: 3}},
			{Line: 2, Address: []uint64{}, Length: 1, Stats: m.CoverageStat{Line: 0}},
		},
		Covered:   1,
		Coverable: 2,
	}}}, report)
}

func TestWorkflow_ExportRejectsInvalidRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	for name, root := range map[string]string{
		"missing":       filepath.Join(dir, "missing"),
		"not directory": file,
	} {
		t.Run(name, func(t *testing.T) {
			loader := adaptermocks.NewMockTraceLoader(t)
			loader.On("LoadAll", mock.Anything, mock.Anything).Return(scenarioStore(), nil)

			outputFS := adaptermocks.NewMockOutputFSAdapter(t)
			wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), outputFS, loader, controllermocks.NewMockUI(t))

			args := htmlArgs("traces.json")
			args.Root = m.Path(root)

			err := wf.Export(context.Background(), args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "source root")
			outputFS.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}
