package event

// EventSchemaVersion is stamped into every published envelope so
// consumers of the dead-letter file can tell old payloads apart.
const EventSchemaVersion = "1.0"

// DeadLetterFilePermissions is the file permission mode for dead-letter files
const DeadLetterFilePermissions = 0644

// LogMsgHandlerErrorFormat is the format for aggregated handler errors
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
