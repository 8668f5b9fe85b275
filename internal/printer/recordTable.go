package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kulikvl/weblog-analysis/internal/anonymizer"
	"github.com/kulikvl/weblog-analysis/internal/model"
)

var headers = []string{"IP", "Timestamp", "Request", "Status", "Size", "Method", "Endpoint", "Protocol"}

type Options struct {
	// MaxRows caps the listing; 0 prints every record.
	MaxRows      int
	AnonymizeIPs bool
}

// PrintRecords writes the parsed records as a bordered table.
func PrintRecords(w io.Writer, records []model.LogRecord, opts Options) error {
	shown := records
	if opts.MaxRows > 0 && len(shown) > opts.MaxRows {
		shown = shown[:opts.MaxRows]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for _, r := range shown {
		ip := r.IP
		if opts.AnonymizeIPs {
			ip = anonymizer.AnonymizeIP(ip)
		}
		t.Row(ip, r.Timestamp, r.Request, r.Status, r.Size, r.Method, r.Endpoint, r.Protocol)
	}

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	if len(shown) < len(records) {
		_, err := fmt.Fprintf(w, "only showing top %d rows\n", len(shown))
		return err
	}
	return nil
}
