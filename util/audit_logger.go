package util

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ihvn/medix/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditEventType represents different types of audit events
type AuditEventType string

const (
	EventEndpointCall       AuditEventType = "ENDPOINT_CALL"
	EventForgedRequest      AuditEventType = "FORGED_REQUEST"
	EventRateLimitExceeded  AuditEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity AuditEventType = "SUSPICIOUS_ACTIVITY"
)

// AuditEvent represents a request event to be logged
type AuditEvent struct {
	EventType AuditEventType
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var auditLogger *log.Logger
var auditDB *gorm.DB

// SetAuditLoggerDB sets a gorm DB instance used by the audit logger.
// Call this during application startup after DB initialization.
func SetAuditLoggerDB(db *gorm.DB) {
	auditDB = db
}

func init() {
	auditLogger = log.New(os.Stdout, "[AUDIT] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAuditEvent logs an audit event to stdout and, when a DB is configured,
// persists it as an AuditLog row. Persistence is best-effort and never fails
// the request.
func LogAuditEvent(event AuditEvent) {
	msg := fmt.Sprintf("Event=%s IP=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(event.EventType)),
		sanitizeLogValue(event.IP),
		sanitizeLogValue(event.UserAgent),
		sanitizeLogValue(event.Message),
	)

	if len(event.Details) > 0 {
		msg = fmt.Sprintf("%s DetailsCount=%d", msg, len(event.Details))
	}

	auditLogger.Println(msg)

	if auditDB != nil {
		var details datatypes.JSON
		if event.Details != nil {
			if b, err := json.Marshal(event.Details); err == nil {
				details = datatypes.JSON(b)
			}
		}

		entry := model.AuditLog{
			EventType: string(event.EventType),
			IP:        sanitizeLogValue(event.IP),
			UserAgent: sanitizeLogValue(event.UserAgent),
			Message:   sanitizeLogValue(event.Message),
			Details:   details,
		}

		if err := auditDB.Create(&entry).Error; err != nil {
			auditLogger.Printf("Failed to persist audit event: %v", err)
		}
	}
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogAuditEvent(AuditEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}

// LogForgedRequest logs a mutating request that failed anti-forgery checks
func LogForgedRequest(ip, userAgent, endpoint, reason string) {
	LogAuditEvent(AuditEvent{
		EventType: EventForgedRequest,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Rejected request to %s: %s", endpoint, reason),
	})
}

// SetAuditLoggerForTest sets a custom logger for testing purposes
func SetAuditLoggerForTest(logger *log.Logger) {
	auditLogger = logger
}
