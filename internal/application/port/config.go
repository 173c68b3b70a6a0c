package port

import "github.com/bnema/dumbwm/internal/domain/entity"

// MigrationResult is what CheckMigration found in the user's config file.
type MigrationResult struct {
	// MissingKeys are defaults the file does not set.
	MissingKeys []string
	// UnknownKeys are set in the file but never read. Migrate drops them.
	UnknownKeys []string
	ConfigFile  string
}

// Pending reports whether Migrate would change the file.
func (r *MigrationResult) Pending() bool {
	return r != nil && (len(r.MissingKeys) > 0 || len(r.UnknownKeys) > 0)
}

// KeyInfo describes one missing key for `dumbwm config migrate`.
type KeyInfo struct {
	Key          string // dot path, e.g. "layout.outer_gaps"
	Type         string
	DefaultValue string
}

// ConfigMigrator brings an older config file up to the current key set.
type ConfigMigrator interface {
	// CheckMigration returns nil when there is no file yet or nothing to do.
	CheckMigration() (*MigrationResult, error)
	// Migrate rewrites the file and returns the keys it added.
	Migrate() ([]string, error)
	GetKeyInfo(key string) KeyInfo
}

// ConfigSchemaProvider lists every key dumbwm reads from its config file.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
