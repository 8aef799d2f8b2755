package bundler

import (
	"testing"

	"github.com/evanw/esbuild/pkg/api"
)

func TestParseEngines(t *testing.T) {
	tcs := []struct {
		name       string
		platforms  []string
		expect     []api.Engine
		expectFail bool
	}{
		{
			name:      "node",
			platforms: []string{"node14"},
			expect:    []api.Engine{{Name: api.EngineNode, Version: "14"}},
		},
		{
			name:      "multi",
			platforms: []string{"node14.17", "chrome88"},
			expect: []api.Engine{
				{Name: api.EngineNode, Version: "14.17"},
				{Name: api.EngineChrome, Version: "88"},
			},
		},
		{
			name:      "empty",
			platforms: nil,
			expect:    nil,
		},
		{
			name:       "no-version",
			platforms:  []string{"node"},
			expectFail: true,
		},
		{
			name:       "unknown",
			platforms:  []string{"netscape4"},
			expectFail: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			engines, err := ParseEngines(tc.platforms)
			if tc.expectFail {
				if err == nil {
					t.Fatal("expected parse to fail")
				}
				return
			}
			if err != nil {
				t.Fatal("parse failed:", err)
			}
			if len(engines) != len(tc.expect) {
				t.Fatalf("expected %d engines, got %d", len(tc.expect), len(engines))
			}
			for i, expect := range tc.expect {
				if engines[i] != expect {
					t.Errorf("engine %d: expected %+v, got %+v", i, expect, engines[i])
				}
			}
		})
	}
}
