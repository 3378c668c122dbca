// Package metastore manages the sandbox Hive metastore: its fixed network
// identity, the embedded Derby database it persists to, and the lifecycle
// of the detached server process.
package metastore

import (
	"fmt"
	"path/filepath"
)

// Port is the well-known metastore thrift port.
const Port = 9083

// URI returns the thrift endpoint clients connect to.
func URI() string {
	return fmt.Sprintf("thrift://localhost:%d", Port)
}

// DerbyURL returns the JDBC connection string for the embedded database
// at dbDir. The create flag makes Derby materialize the database on
// first connection.
func DerbyURL(dbDir string) string {
	return fmt.Sprintf("jdbc:derby:;databaseName=%s;create=true", filepath.ToSlash(dbDir))
}
