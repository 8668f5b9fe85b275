package anonymizer

import (
	"strings"
)

// AnonymizeIP masks the host octet of an IPv4 address. Anything else,
// including the empty string of an unparsed line, is returned unchanged.
func AnonymizeIP(ip string) string {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return ip
	}
	parts[3] = "X"
	return strings.Join(parts, ".")
}
