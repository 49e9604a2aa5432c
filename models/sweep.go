package models

// SweepResult reports what one reaper sweep removed.
type SweepResult struct {
	// LinksPurged is the number of share links deleted.
	LinksPurged int64
	// FilesPurged is the number of orphaned files deleted.
	FilesPurged int64
}
