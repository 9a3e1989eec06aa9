package config

import "os"

// ArchiveFilename is the workspace archive created by `aockit init`. Its
// presence marks a directory as an aockit workspace.
const ArchiveFilename = "AockitArchive.sqlite"

type DatabaseConfig struct {
	Path string
}

func NewDatabaseConfig() *DatabaseConfig {
	path := os.Getenv("AOCKIT_DB_PATH")
	if path == "" {
		path = ArchiveFilename
	}
	return &DatabaseConfig{
		Path: path,
	}
}
