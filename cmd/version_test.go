package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "covsight.dev/pkg/covsight", Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "3f2c1a9"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	t.Run("module version", func(t *testing.T) {
		bi := newBuildInfo("", info)
		assert.Equal(t, buildInfo{
			Version:   "v0.4.0",
			GoVersion: "go1.25.1",
			Revision:  "3f2c1a9",
			Time:      "2026-10-01T12:00:00Z",
			Modified:  true,
		}, bi)
	})

	t.Run("linked version wins", func(t *testing.T) {
		assert.Equal(t, "v1.0.0", newBuildInfo("v1.0.0", info).Version)
	})

	t.Run("devel build has no version", func(t *testing.T) {
		devel := &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "(devel)"}}
		assert.Empty(t, newBuildInfo("", devel).Version)
	})
}

func TestBuildInfo_Write(t *testing.T) {
	var out bytes.Buffer
	buildInfo{Version: "v0.4.0", GoVersion: "go1.25.1", Revision: "3f2c1a9", Modified: true, Time: "2026-10-01T12:00:00Z"}.write(&out)

	assert.Equal(t, "covsight v0.4.0\n"+
		"go:       go1.25.1\n"+
		"commit:   3f2c1a9 (modified)\n"+
		"built:    2026-10-01T12:00:00Z\n", out.String())

	out.Reset()
	buildInfo{}.write(&out)
	assert.Equal(t, "covsight unknown\n", out.String())
}

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "covsight ")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}
