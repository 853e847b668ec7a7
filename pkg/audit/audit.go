package audit

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"
)

// SDID constants for structured data IDs (RFC5424).
// 32473 is the enterprise number reserved for documentation (RFC 5612).
const (
	PEN         = 32473
	SDIDAuth    = "auth@32473"
	SDIDSubject = "subject@32473"
	SDIDAction  = "action@32473"
	SDIDClient  = "client@32473"
)

// Syslog facility constants
const (
	FacilityAuth     = 4  // LOG_AUTH - security/authorization messages
	FacilityAuthPriv = 10 // LOG_AUTHPRIV - security/authorization messages (private)
)

// AppName is the APP-NAME field of every audit line.
const AppName = "pawgress"

// Severity levels matching syslog (RFC5424)
type Severity int

const (
	SeverityEmergency Severity = iota // 0
	SeverityAlert                     // 1
	SeverityCritical                  // 2
	SeverityError                     // 3
	SeverityWarning                   // 4
	SeverityNotice                    // 5
	SeverityInfo                      // 6
	SeverityDebug                     // 7
)

// Event represents an audit event
type Event interface {
	MessageID() string
	Message() string
	Severity() Severity
	Facility() int
	StructuredData() map[string]map[string]string
}

// Sink persists audit events.
type Sink interface {
	Save(event Event) error
}

// Logger handles audit logging in RFC5424 syslog format
type Logger struct {
	writer   io.Writer
	sink     Sink
	hostname string
	appName  string
	pid      int
	now      func() time.Time
}

// NewLogger creates a new audit logger writing to w.
func NewLogger(w io.Writer) *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		writer:   w,
		hostname: hostname,
		appName:  AppName,
		pid:      os.Getpid(),
		now:      time.Now,
	}
}

// WithSink additionally persists every logged event to s.
func (l *Logger) WithSink(s Sink) *Logger {
	l.sink = s
	return l
}

// Log writes an audit event in RFC5424 syslog format
// Format: <PRI>VERSION TIMESTAMP HOSTNAME APP-NAME PROCID MSGID SD MSG
func (l *Logger) Log(event Event) {
	if l == nil {
		return
	}

	_, _ = io.WriteString(l.writer, l.format(event))

	if l.sink != nil {
		if err := l.sink.Save(event); err != nil {
			log.Printf("audit: failed to save event: %v", err)
		}
	}
}

func (l *Logger) format(event Event) string {
	// PRI = facility * 8 + severity
	pri := event.Facility()*8 + int(event.Severity())

	timestamp := l.now().UTC().Format("2006-01-02T15:04:05.000Z")

	sd := formatStructuredData(event.StructuredData())
	if sd == "" {
		sd = "-"
	}

	hostname := l.hostname
	if hostname == "" {
		hostname = "-"
	}

	return fmt.Sprintf("<%d>1 %s %s %s %d %s %s %s\n",
		pri,
		timestamp,
		hostname,
		l.appName,
		l.pid,
		event.MessageID(),
		sd,
		event.Message(),
	)
}

// formatStructuredData formats the structured data according to RFC5424.
// Elements and params are sorted so lines are stable.
// Format: [sdid param1="value1" param2="value2"][sdid2 ...]
func formatStructuredData(sd map[string]map[string]string) string {
	if len(sd) == 0 {
		return ""
	}

	sdids := make([]string, 0, len(sd))
	for sdid := range sd {
		sdids = append(sdids, sdid)
	}
	sort.Strings(sdids)

	var b strings.Builder
	for _, sdid := range sdids {
		params := sd[sdid]
		keys := make([]string, 0, len(params))
		for key := range params {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b.WriteString("[" + sdid)
		for _, key := range keys {
			b.WriteString(" " + key + "=" + escapeSDValue(params[key]))
		}
		b.WriteString("]")
	}
	return b.String()
}

// escapeSDValue escapes special characters in structured data values per RFC5424
func escapeSDValue(value string) string {
	// Escape backslash, double quote, and closing bracket
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	value = strings.ReplaceAll(value, "]", "\\]")
	return "\"" + value + "\""
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func severity(success bool) Severity {
	if success {
		return SeverityInfo
	}
	return SeverityWarning
}
