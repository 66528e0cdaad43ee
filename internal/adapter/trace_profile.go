package adapter

import (
	"fmt"

	"golang.org/x/tools/cover"

	m "covsight.dev/pkg/covsight/internal/model"
)

// loadCoverProfile converts a Go coverage profile into line traces. Every
// block contributes one trace per line it spans; lines shared by several
// blocks are merged by the store.
func loadCoverProfile(path m.Path) (*m.TraceStore, error) {
	profiles, err := cover.ParseProfiles(string(path))
	if err != nil {
		return nil, fmt.Errorf("parse coverage profile: %w", err)
	}

	return storeFromProfiles(profiles), nil
}

func storeFromProfiles(profiles []*cover.Profile) *m.TraceStore {
	store := m.NewTraceStore()

	for _, profile := range profiles {
		file := m.Path(profile.FileName)
		store.AddPath(file)

		for _, block := range profile.Blocks {
			if block.StartLine <= 0 || block.EndLine < block.StartLine {
				continue
			}

			for line := block.StartLine; line <= block.EndLine; line++ {
				store.Insert(file, m.Trace{
					Line:   uint64(line),
					Length: 1,
					Stats:  m.CoverageStat{Line: uint64(max(block.Count, 0))},
				})
			}
		}
	}

	return store
}
