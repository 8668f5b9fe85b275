package mapper

import (
	"github.com/kulikvl/weblog-analysis/internal/anonymizer"
	"github.com/kulikvl/weblog-analysis/internal/database/entity"
	"github.com/kulikvl/weblog-analysis/internal/model"
	"github.com/kulikvl/weblog-analysis/internal/utils"
)

func ToDb(r model.LogRecord) entity.LogRow {
	return entity.LogRow{
		IP:        anonymizer.AnonymizeIP(r.IP),
		Timestamp: r.Timestamp,
		Request:   r.Request,
		Status:    r.Status,
		Size:      r.Size,
		Method:    r.Method,
		Endpoint:  r.Endpoint,
		Protocol:  r.Protocol,
	}
}

func ToDbBatch(records []model.LogRecord) []entity.LogRow {
	return utils.Map(records, ToDb)
}
