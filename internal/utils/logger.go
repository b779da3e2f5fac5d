package utils

import (
	"log"
	"strings"
)

// LogEvent writes one application log line keyed by module and action,
// correlatable with the HTTP access log through request_id. Callers pass
// a short summary, never the raw payload.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] request_id=%s action=%s msg=%s",
		strings.ToUpper(module), strings.TrimSpace(requestID), action, message)
}
