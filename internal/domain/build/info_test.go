package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"full", Info{Version: "v0.3.0", Commit: "0123456789abcdef"}, "dumbwm v0.3.0 (0123456)"},
		{"short commit", Info{Version: "v0.3.0", Commit: "abc"}, "dumbwm v0.3.0 (abc)"},
		{"no commit", Info{Version: "v0.3.0", Commit: "unknown"}, "dumbwm v0.3.0"},
		{"empty", Info{}, "dumbwm dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestRepoURL(t *testing.T) {
	assert.Equal(t, "https://github.com/bnema/dumbwm", RepoURL())
}
