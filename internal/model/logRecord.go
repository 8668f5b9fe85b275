package model

// LogRecord is one access-log line split into its fields. A field the
// patterns could not extract is the empty string.
type LogRecord struct {
	IP        string
	Timestamp string
	Request   string
	Status    string
	Size      string
	Method    string
	Endpoint  string
	Protocol  string
}
