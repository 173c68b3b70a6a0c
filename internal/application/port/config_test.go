package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationResultPending(t *testing.T) {
	var none *MigrationResult
	assert.False(t, none.Pending())
	assert.False(t, (&MigrationResult{ConfigFile: "c.toml"}).Pending())
	assert.True(t, (&MigrationResult{MissingKeys: []string{"layout.gaps"}}).Pending())
	assert.True(t, (&MigrationResult{UnknownKeys: []string{"old.key"}}).Pending())
}
