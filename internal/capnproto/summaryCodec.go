package capnproto

import (
	"fmt"

	"capnproto.org/go/capnp/v3"

	"github.com/kulikvl/weblog-analysis/internal/model"
	"github.com/kulikvl/weblog-analysis/schema"
)

func Encode(s model.Summary) ([]byte, error) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	summary, err := schema.NewRootSummary(seg)
	if err != nil {
		return nil, fmt.Errorf("failed to create root Summary: %w", err)
	}
	summary.SetTotalRecords(uint64(s.TotalRecords))

	endpoints, err := summary.NewEndpoints(int32(len(s.Endpoints)))
	if err != nil {
		return nil, fmt.Errorf("failed to create endpoints list: %w", err)
	}
	for i, e := range s.Endpoints {
		ec := endpoints.At(i)
		ec.SetHits(uint64(e.Hits))
		if err := ec.SetEndpoint(e.Endpoint); err != nil {
			return nil, fmt.Errorf("failed to set endpoint %d: %w", i, err)
		}
	}

	statuses, err := summary.NewStatuses(int32(len(s.Statuses)))
	if err != nil {
		return nil, fmt.Errorf("failed to create statuses list: %w", err)
	}
	for i, st := range s.Statuses {
		sc := statuses.At(i)
		sc.SetCount(uint64(st.Count))
		if err := sc.SetStatus(st.Status); err != nil {
			return nil, fmt.Errorf("failed to set status %d: %w", i, err)
		}
	}

	data, err := msg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}
	return data, nil
}

func Decode(data []byte) (model.Summary, error) {
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	root, err := schema.ReadRootSummary(msg)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to read root Summary: %w", err)
	}

	summary := model.Summary{
		TotalRecords: int(root.TotalRecords()),
	}

	endpoints, err := root.Endpoints()
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to read endpoints: %w", err)
	}
	for i := 0; i < endpoints.Len(); i++ {
		ec := endpoints.At(i)
		endpoint, err := ec.Endpoint()
		if err != nil {
			return model.Summary{}, fmt.Errorf("failed to read endpoint %d: %w", i, err)
		}
		summary.Endpoints = append(summary.Endpoints, model.EndpointCount{Endpoint: endpoint, Hits: int(ec.Hits())})
	}

	statuses, err := root.Statuses()
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to read statuses: %w", err)
	}
	for i := 0; i < statuses.Len(); i++ {
		sc := statuses.At(i)
		status, err := sc.Status()
		if err != nil {
			return model.Summary{}, fmt.Errorf("failed to read status %d: %w", i, err)
		}
		summary.Statuses = append(summary.Statuses, model.StatusCount{Status: status, Count: int(sc.Count())})
	}

	return summary, nil
}
