package utils

import (
	"log"
	"strings"
)

// LogEvent writes one audit line for a domain action (pasaje creado, export
// entregado). The message should be a short summary, never the raw payload.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] %s request_id=%s %s", strings.ToUpper(module), action, req, message)
}
