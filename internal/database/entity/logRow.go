package entity

type LogRow struct {
	IP        string
	Timestamp string
	Request   string
	Status    string
	Size      string
	Method    string
	Endpoint  string
	Protocol  string
}
