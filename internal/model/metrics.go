package model

// MetricsRecorder receives domain events worth counting.
type MetricsRecorder interface {
	RecordFollow()
	RecordUnfollow()
	RecordPostCreated(withMedia bool)
	RecordAuthAttempt(action string, success bool)
}
