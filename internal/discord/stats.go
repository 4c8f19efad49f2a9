package discord

import (
	"sync/atomic"
	"time"
)

var (
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().Unix())
}

// CommandsReceived returns how many commands this process has handled
func CommandsReceived() int64 {
	return commandCounter.Load()
}

// LastCommandAt returns when the most recent command arrived, zero if none
func LastCommandAt() time.Time {
	unix := lastCommandUnix.Load()
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}
