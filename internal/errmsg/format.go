// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Schedule operations
	OpScheduleFetch Op = "fetch prayer times"
	OpScheduleLoad  Op = "load cached prayer times"
	OpScheduleCache Op = "cache prayer times"

	// Mosque operations
	OpMosqueSearch Op = "search mosques"
	OpMosqueSelect Op = "select mosque"

	// Settings operations
	OpSettingsLoad Op = "load settings"
	OpSettingsSave Op = "save settings"

	// Alert operations
	OpAlertStart  Op = "start adhan"
	OpAdhanUpload Op = "upload adhan"

	// Device operations
	OpTouchOpen   Op = "open touch controller"
	OpMQTTConnect Op = "connect to MQTT broker"
	OpPublish     Op = "publish event"
	OpWebServe    Op = "serve web API"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
