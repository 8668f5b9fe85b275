package aggregator

import (
	"context"
	"sort"

	"github.com/kulikvl/weblog-analysis/internal/model"
)

// Aggregator groups parsed records into a Summary.
type Aggregator interface {
	Aggregate(ctx context.Context, records []model.LogRecord) (model.Summary, error)
}

// InMemory counts records in process.
type InMemory struct{}

func (InMemory) Aggregate(_ context.Context, records []model.LogRecord) (model.Summary, error) {
	return model.Summary{
		TotalRecords: len(records),
		Endpoints:    CountByEndpoint(records),
		Statuses:     CountByStatus(records),
	}, nil
}

// CountByEndpoint returns hits per endpoint, most hit first. Ties are ordered
// by endpoint so repeated runs produce the same order.
func CountByEndpoint(records []model.LogRecord) []model.EndpointCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Endpoint]++
	}

	items := make([]model.EndpointCount, 0, len(counts))
	for endpoint, hits := range counts {
		items = append(items, model.EndpointCount{Endpoint: endpoint, Hits: hits})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Hits != items[j].Hits {
			return items[i].Hits > items[j].Hits
		}
		return items[i].Endpoint < items[j].Endpoint
	})
	return items
}

// CountByStatus returns records per status, ordered by the status string.
func CountByStatus(records []model.LogRecord) []model.StatusCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Status]++
	}

	items := make([]model.StatusCount, 0, len(counts))
	for status, count := range counts {
		items = append(items, model.StatusCount{Status: status, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Status < items[j].Status
	})
	return items
}
