package models

// SyncTrigger records what started a sync cycle. It is informational only and
// does not change the cycle's control flow.
type SyncTrigger int

const (
	TriggerAppOpen SyncTrigger = iota
	TriggerSessionComplete
	TriggerBackgroundPeriodic
	TriggerManual
)

func (t SyncTrigger) String() string {
	switch t {
	case TriggerAppOpen:
		return "app_open"
	case TriggerSessionComplete:
		return "session_complete"
	case TriggerBackgroundPeriodic:
		return "background_periodic"
	case TriggerManual:
		return "manual"
	default:
		return "unknown"
	}
}
