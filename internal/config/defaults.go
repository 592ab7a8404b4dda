// Package config provides configuration loading and defaults for cmdtrack.
package config

// DefaultDataDir is the default location for cmdtrack state and config.
const DefaultDataDir = "~/.config/cmdtrack"

// DefaultHistoryFile is the filename of the JSON history document.
const DefaultHistoryFile = "history.json"

// DefaultArchiveFile is the filename of the SQLite archive for pruned records.
const DefaultArchiveFile = "archive.db"

// DefaultRetentionDays is how long records are kept before cleanup prunes them.
const DefaultRetentionDays = 30

// DefaultSimilarLimit caps similar-suggestion query results.
const DefaultSimilarLimit = 5

// DefaultArchivePruned controls whether cleanup copies pruned records into
// the archive database.
const DefaultArchivePruned = true

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
