package extractor

import (
	"regexp"

	"github.com/kulikvl/weblog-analysis/internal/model"
)

// Common Log Format:
// 127.0.0.1 - - [10/Oct/2023:13:55:36 -0700] "GET /index.html HTTP/1.1" 200 612
//
// Whitespace classes include the vertical tab, which \s alone does not.
var logPattern = regexp.MustCompile(`([^\s\x0B]+) - - \[(.*?)\] "(.*?)" (\d{3}) (\d+)`)

var (
	methodPattern   = regexp.MustCompile(`(^[^\s\x0B]+)`)
	endpointPattern = regexp.MustCompile(`^[^\s\x0B]+[\s\x0B]+([^\s\x0B]+)`)
	protocolPattern = regexp.MustCompile(`[\s\x0B]+HTTP/\d\.\d`)
)

// Extract parses a raw line into a LogRecord. A line that does not match
// yields a record with every field empty; it is never dropped.
func Extract(line string) model.LogRecord {
	var r model.LogRecord
	if m := logPattern.FindStringSubmatch(line); m != nil {
		r.IP = m[1]
		r.Timestamp = m[2]
		r.Request = m[3]
		r.Status = m[4]
		r.Size = m[5]
	}
	r.Method, r.Endpoint, r.Protocol = SplitRequest(r.Request)
	return r
}

// SplitRequest breaks "GET /index.html HTTP/1.1" into its method, endpoint
// and protocol. The protocol keeps its leading whitespace.
func SplitRequest(request string) (method, endpoint, protocol string) {
	method = group(methodPattern, request, 1)
	endpoint = group(endpointPattern, request, 1)
	protocol = group(protocolPattern, request, 0)
	return method, endpoint, protocol
}

func ExtractAll(lines []string) []model.LogRecord {
	records := make([]model.LogRecord, len(lines))
	for i, line := range lines {
		records[i] = Extract(line)
	}
	return records
}

func group(re *regexp.Regexp, s string, idx int) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[idx]
}
