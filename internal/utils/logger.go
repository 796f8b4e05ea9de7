package utils

import (
	"log"
	"runtime/debug"
	"strings"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogFailure logs an error together with the current goroutine stack.
func LogFailure(requestID, module, action string, err error) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s error=%v\n%s", strings.ToUpper(module), action, req, err, debug.Stack())
}
