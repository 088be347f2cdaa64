package models

import "time"

// RawJobRecord is one accounting row exactly as the extraction source
// reports it. Timestamp and count cells stay strings because sacct emits
// sentinels ("Unknown", "", "0:0") that the pipeline resolves later; memory
// cells are already normalized to GB at the extraction boundary.
type RawJobRecord struct {
	JobID      string
	JobName    string
	User       string
	Account    string
	Partition  string
	State      string
	Submit     string
	Start      string
	End        string
	ReqCPUS    string
	AllocCPUS  string
	CPUTimeRAW string
	ReqMemGB   float64
	MaxRSSGB   float64
	GPUCount   string
}

// NormalizedJobRecord is a RawJobRecord whose timestamps have been parsed.
// SubmitTime is never zero: records without a usable submit time (after
// falling back to the start time) do not survive normalization. StartTime
// and EndTime are zero when the source reported them missing or unparsable.
type NormalizedJobRecord struct {
	JobID      string
	User       string
	Account    string
	Partition  string
	State      string
	SubmitTime time.Time
	StartTime  time.Time
	EndTime    time.Time
	ReqCPUS    string
	AllocCPUS  string
	CPUTimeRAW string
	ReqMemGB   float64
	MaxRSSGB   float64
	GPUCount   string
}

// ParseRecordTime parses a timestamp cell from an accounting record. Slurm
// writes local time without a zone offset; relayed dumps may carry RFC3339.
// Sentinel and unparsable cells return ok=false.
func ParseRecordTime(cell string) (time.Time, bool) {
	switch cell {
	case "", "Unknown", "None", "N/A":
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", cell, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, cell); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// EnrichedJobRecord carries the per-job numbers the aggregator consumes.
// All duration and usage fields are non-negative; both efficiency ratios
// lie in [0, 1]. SubmitTime alone determines the record's time bucket.
type EnrichedJobRecord struct {
	JobID      string
	State      string
	SubmitTime time.Time

	QueueTimeHours   float64
	RunTimeHours     float64
	ReqCPUs          float64
	AllocCPUs        float64
	UsedCPUHours     float64
	AllocCPUHours    float64
	ReqMemGB         float64
	MaxRSSGB         float64
	GPUCount         float64
	GPUHours         float64
	CPUEfficiency    float64
	MemoryEfficiency float64
}
