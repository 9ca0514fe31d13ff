package consts

import "path/filepath"

// Defaults shared by the engine and the config loader
const (
	DefaultFileBaseName = "timedLog"
	LogFileExt          = ".log"
	DefaultDir          = "."
	// TimestampLayout mirrors the JavaScript Date.toUTCString shape.
	TimestampLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
	EntrySeparator  = " - "
	FileTerminator  = "\n"
)

// GetLogFilePath returns the path of the log file for a base name inside dir.
// Empty values fall back to the defaults.
func GetLogFilePath(dir, baseName string) string {
	if dir == "" {
		dir = DefaultDir
	}
	if baseName == "" {
		baseName = DefaultFileBaseName
	}
	return filepath.Join(dir, baseName+LogFileExt)
}
