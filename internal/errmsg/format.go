// Package errmsg provides consistent error formatting for operator-visible log lines.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Catalog operations
	OpFetchPlaylist Op = "fetch playlist"
	OpFetchRandom   Op = "fetch random track"
	OpDownload      Op = "download track"

	// Playback operations
	OpLoadTrack      Op = "load track"
	OpTogglePlayback Op = "toggle playback"

	// Orchestration
	OpSubmitRequest Op = "submit request"
	OpInitialize    Op = "initialize application"

	// Cache maintenance
	OpCacheList  Op = "list cached tracks"
	OpCacheClear Op = "clear cache"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
