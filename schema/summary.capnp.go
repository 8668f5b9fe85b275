// Package schema holds the Go bindings for summary.capnp, laid out the way
// capnpc-go emits them.
package schema

//go:generate sh -c "capnp compile -I$(go list -m -f '{{.Dir}}' capnproto.org/go/capnp/v3)/std -ogo summary.capnp"

import (
	capnp "capnproto.org/go/capnp/v3"
)

type EndpointCount capnp.Struct

func NewEndpointCount(s *capnp.Segment) (EndpointCount, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return EndpointCount(st), err
}

func NewRootEndpointCount(s *capnp.Segment) (EndpointCount, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return EndpointCount(st), err
}

func ReadRootEndpointCount(msg *capnp.Message) (EndpointCount, error) {
	root, err := msg.Root()
	return EndpointCount(root.Struct()), err
}

func (s EndpointCount) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (EndpointCount) DecodeFromPtr(p capnp.Ptr) EndpointCount {
	return EndpointCount(capnp.Struct{}.DecodeFromPtr(p))
}

func (s EndpointCount) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s EndpointCount) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s EndpointCount) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s EndpointCount) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s EndpointCount) Hits() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s EndpointCount) SetHits(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s EndpointCount) Endpoint() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s EndpointCount) HasEndpoint() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s EndpointCount) SetEndpoint(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

// EndpointCount_List is a list of EndpointCount.
type EndpointCount_List = capnp.StructList[EndpointCount]

// NewEndpointCount_List creates a new list of EndpointCount.
func NewEndpointCount_List(s *capnp.Segment, sz int32) (EndpointCount_List, error) {
	l, err := capnp.NewCompositeList(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1}, sz)
	return capnp.StructList[EndpointCount](l), err
}

type StatusCount capnp.Struct

func NewStatusCount(s *capnp.Segment) (StatusCount, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return StatusCount(st), err
}

func NewRootStatusCount(s *capnp.Segment) (StatusCount, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return StatusCount(st), err
}

func ReadRootStatusCount(msg *capnp.Message) (StatusCount, error) {
	root, err := msg.Root()
	return StatusCount(root.Struct()), err
}

func (s StatusCount) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (StatusCount) DecodeFromPtr(p capnp.Ptr) StatusCount {
	return StatusCount(capnp.Struct{}.DecodeFromPtr(p))
}

func (s StatusCount) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s StatusCount) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s StatusCount) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s StatusCount) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s StatusCount) Count() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s StatusCount) SetCount(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s StatusCount) Status() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s StatusCount) HasStatus() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s StatusCount) SetStatus(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

// StatusCount_List is a list of StatusCount.
type StatusCount_List = capnp.StructList[StatusCount]

// NewStatusCount_List creates a new list of StatusCount.
func NewStatusCount_List(s *capnp.Segment, sz int32) (StatusCount_List, error) {
	l, err := capnp.NewCompositeList(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1}, sz)
	return capnp.StructList[StatusCount](l), err
}

type Summary capnp.Struct

func NewSummary(s *capnp.Segment) (Summary, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2})
	return Summary(st), err
}

func NewRootSummary(s *capnp.Segment) (Summary, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2})
	return Summary(st), err
}

func ReadRootSummary(msg *capnp.Message) (Summary, error) {
	root, err := msg.Root()
	return Summary(root.Struct()), err
}

func (s Summary) EncodeAsPtr(seg *capnp.Segment) capnp.Ptr {
	return capnp.Struct(s).EncodeAsPtr(seg)
}

func (Summary) DecodeFromPtr(p capnp.Ptr) Summary {
	return Summary(capnp.Struct{}.DecodeFromPtr(p))
}

func (s Summary) ToPtr() capnp.Ptr {
	return capnp.Struct(s).ToPtr()
}

func (s Summary) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s Summary) Message() *capnp.Message {
	return capnp.Struct(s).Message()
}

func (s Summary) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s Summary) TotalRecords() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Summary) SetTotalRecords(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Summary) Endpoints() (EndpointCount_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return EndpointCount_List(p.List()), err
}

func (s Summary) HasEndpoints() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s Summary) SetEndpoints(v EndpointCount_List) error {
	return capnp.Struct(s).SetPtr(0, v.ToPtr())
}

// NewEndpoints sets the endpoints field to a newly
// allocated EndpointCount_List, preferring placement in s's segment.
func (s Summary) NewEndpoints(n int32) (EndpointCount_List, error) {
	l, err := NewEndpointCount_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return EndpointCount_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

func (s Summary) Statuses() (StatusCount_List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return StatusCount_List(p.List()), err
}

func (s Summary) HasStatuses() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s Summary) SetStatuses(v StatusCount_List) error {
	return capnp.Struct(s).SetPtr(1, v.ToPtr())
}

// NewStatuses sets the statuses field to a newly
// allocated StatusCount_List, preferring placement in s's segment.
func (s Summary) NewStatuses(n int32) (StatusCount_List, error) {
	l, err := NewStatusCount_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return StatusCount_List{}, err
	}
	err = capnp.Struct(s).SetPtr(1, l.ToPtr())
	return l, err
}

// Summary_List is a list of Summary.
type Summary_List = capnp.StructList[Summary]

// NewSummary_List creates a new list of Summary.
func NewSummary_List(s *capnp.Segment, sz int32) (Summary_List, error) {
	l, err := capnp.NewCompositeList(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2}, sz)
	return capnp.StructList[Summary](l), err
}
