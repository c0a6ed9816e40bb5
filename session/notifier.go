package session

import "github.com/wealthnest/client-go/utils/logger"

// Notifier receives the transient user-facing messages (the toast layer in a
// UI). Callers must only be notified of a mutation's success after its cache
// invalidation has been applied.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator receives the hard redirects issued on login, logout and
// invitation acceptance. In a UI this is a full page navigation; headless
// hosts can treat it as a remount signal.
type Navigator interface {
	Redirect(path string)
}

// LogNotifier is the default Notifier; it writes notifications to the log.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { logger.LogInfo(msg) }
func (LogNotifier) Error(msg string)   { logger.LogError(msg) }

// NopNavigator is the default Navigator for hosts without a routing layer.
type NopNavigator struct{}

func (NopNavigator) Redirect(string) {}
