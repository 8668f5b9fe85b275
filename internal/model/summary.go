package model

type EndpointCount struct {
	Endpoint string
	Hits     int
}

type StatusCount struct {
	Status string
	Count  int
}

// Summary is the aggregate of one run. Endpoints are ordered by hits
// descending, Statuses by status ascending.
type Summary struct {
	TotalRecords int
	Endpoints    []EndpointCount
	Statuses     []StatusCount
}

func (s Summary) Empty() bool {
	return s.TotalRecords == 0
}
