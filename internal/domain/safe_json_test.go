package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covsight.dev/pkg/covsight/internal/model"
)

func TestEscapeScript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `"hello"`, `"hello"`},
		{"closing script", `"</script>"`, `"<\/script>"`},
		{"closing script mixed case", `"</ScRiPt>"`, `"<\/ScRiPt>"`},
		{"other closing tag untouched", `"</div>"`, `"</div>"`},
		{"comment open", `"<!-- x"`, `"\u003c!-- x"`},
		{"line separator", "\"a" + string(rune(0x2028)) + "b\"", `"a\u2028b"`},
		{"paragraph separator", "\"a" + string(rune(0x2029)) + "b\"", `"a\u2029b"`},
		{"multi-byte kept", `"héllo ✓"`, `"héllo ✓"`},
		{"truncated prefix", `"</scr"`, `"</scr"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeScript(tt.in))
		})
	}
}

func TestToStringSafe_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"</script><script>alert(1)</script>",
		"</SCRIPT >",
		"<!-- comment -->",
		"<!--",
		"a" + string(rune(0x2028)) + "b" + string(rune(0x2029)) + "c",
		"quotes \" and backslashes \\ and slashes /",
		"<b>&amp;</b>",
		"tab\tnewline\n",
	}

	for _, in := range inputs {
		encoded, err := ToStringSafe(in)
		require.NoError(t, err)

		lower := strings.ToLower(encoded)
		assert.NotContains(t, lower, "</script")
		assert.NotContains(t, encoded, "<!--")
		assert.NotContains(t, encoded, string(rune(0x2028)))
		assert.NotContains(t, encoded, string(rune(0x2029)))

		var decoded string
		require.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
		assert.Equal(t, in, decoded)
	}
}

func TestToStringSafe_ReportRoundTrip(t *testing.T) {
	report := m.CoverageReport{Files: []m.SourceFile{{
		Path:      []string{"src", "a.rs"},
		Content:   "// </script>\nfn a(){}\n",
		Traces:    []m.Trace{{Line: 1, Address: []uint64{}, Length: 1, Stats: m.CoverageStat{Line: 3}}},
		Covered:   1,
		Coverable: 1,
	}}}

	encoded, err := ToStringSafe(report)
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(encoded, "\n"))

	var decoded m.CoverageReport
	require.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
	assert.Equal(t, report, decoded)
}

func TestToStringSafe_Unencodable(t *testing.T) {
	_, err := ToStringSafe(map[string]any{"ch": make(chan int)})

	require.ErrorIs(t, err, ErrEncoding)
}

func TestToStringSafe_JSONShape(t *testing.T) {
	encoded, err := ToStringSafe(m.Trace{Line: 1, Address: []uint64{}, Length: 1, Stats: m.CoverageStat{Line: 3}})
	require.NoError(t, err)

	assert.Equal(t, `{"line":1,"address":[],"length":1,"stats":{"Line":3}}`, encoded)
}
