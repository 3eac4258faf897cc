package config

// Storage backend names accepted in STORAGE_BACKEND
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Defaults used when the corresponding environment variable is unset
const (
	DefaultSQLitePath      = "data/guildmaster.sqlite"
	DefaultAutosaveSeconds = 60
)
