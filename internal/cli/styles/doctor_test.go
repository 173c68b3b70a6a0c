package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbwm/internal/cli/styles"
)

func TestDoctorRenderer_Render(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(styles.DoctorReport{
		OverallOK:  true,
		ConfigFile: "/tmp/dumbwm/config.toml",
		Checks: []styles.DoctorCheck{
			{Name: "Display", Detail: ":0 (1920x1080)"},
			{Name: "Menu", Detail: "not configured", Status: styles.DoctorWarning},
		},
	})

	assert.Contains(t, out, "Doctor")
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, ":0 (1920x1080)")
	assert.Contains(t, out, "Warning")
	assert.NotContains(t, out, "Needs attention")
}

func TestDoctorRenderer_RenderFailures(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(styles.DoctorReport{
		ConfigErr: errors.New("layout.gaps must be non-negative"),
		Checks:    []styles.DoctorCheck{{Name: "Display", Detail: "connection refused", Status: styles.DoctorFailed}},
	})

	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "layout.gaps must be non-negative")
	assert.Contains(t, out, "Failed")
}
