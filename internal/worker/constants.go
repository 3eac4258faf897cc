package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Autosave Worker
// ============================================================================

// Log messages for autosave worker operations
const (
	LogMsgAutosaveStarting  = "Autosave worker starting"
	LogMsgAutosaveCycle     = "Autosave pass starting"
	LogMsgAutosaveCompleted = "Autosave pass completed"
	LogMsgAutosaveFailed    = "Autosave failed for player"
	LogMsgAutosaveShutdown  = "Autosave worker shutdown complete"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
