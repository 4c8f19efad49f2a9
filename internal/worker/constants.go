package worker

// Pool defaults
const (
	DefaultPoolWorkers   = 4
	DefaultPoolQueueSize = 64
)

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"

	LogMsgRecoveringPendingMissions = "Recovering pending exploration missions"
	LogMsgSchedulingMission         = "Scheduling exploration resolution"
	LogMsgResolvingMission          = "Resolving exploration"
	LogMsgFailedToResolveMission    = "Failed to resolve exploration"
	LogMsgFailedToRecoverMissions   = "Failed to list pending explorations on startup"
)
