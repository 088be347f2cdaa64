package models

import "time"

// Metric names form the public vocabulary consumed by the rendering, export
// and report layers. Every AggregatedRow carries all eleven, zero-valued
// when nothing contributed to them.
const (
	MetricReqCPUs   = "req_cpus"
	MetricAllocCPUs = "alloc_cpus"
	MetricUsedCPUs  = "used_cpus"
	MetricReqMem    = "req_mem"
	MetricMaxRSS    = "max_rss"
	MetricUsedMem   = "used_mem"
	MetricAllocGPUs = "alloc_gpus"
	MetricUsedGPUs  = "used_gpus"
	MetricQueueTime = "queue_time"
	MetricRunTime   = "run_time"
	MetricJobCount  = "job_count"
)

// MetricNames lists the public vocabulary in its canonical column order.
var MetricNames = []string{
	MetricReqCPUs, MetricAllocCPUs, MetricUsedCPUs,
	MetricReqMem, MetricMaxRSS, MetricUsedMem,
	MetricAllocGPUs, MetricUsedGPUs,
	MetricQueueTime, MetricRunTime, MetricJobCount,
}

// IsMetricName reports whether name belongs to the public vocabulary.
func IsMetricName(name string) bool {
	for _, m := range MetricNames {
		if m == name {
			return true
		}
	}
	return false
}

// AggregatedRow reduces every job submitted within one time bucket to a
// single row of metrics, collapsing thousands of accounting records into a
// table small enough to chart directly. Resource metrics are sums over the
// bucket, queue/run time are per-job means, and job_count counts records.
//
// Example JSON (daily bucket):
//
//	{
//	  "bucket_start": "2026-03-02T00:00:00Z",
//	  "req_cpus": 96,
//	  "alloc_cpus": 128,
//	  "used_cpus": 410.5,
//	  "req_mem": 512,
//	  "max_rss": 301.2,
//	  "used_mem": 301.2,
//	  "alloc_gpus": 8,
//	  "used_gpus": 64,
//	  "queue_time": 1.8,
//	  "run_time": 5.2,
//	  "job_count": 37
//	}
//
// used_mem always equals max_rss; both names exist so callers can ask for
// either. AllocCPUHours and the two mean efficiency ratios stay out of the
// serialized form: they feed the summary statistics, not the public table.
type AggregatedRow struct {
	BucketStart time.Time `json:"bucket_start"`

	ReqCPUs   float64 `json:"req_cpus"`
	AllocCPUs float64 `json:"alloc_cpus"`
	UsedCPUs  float64 `json:"used_cpus"`
	ReqMem    float64 `json:"req_mem"`
	MaxRSS    float64 `json:"max_rss"`
	UsedMem   float64 `json:"used_mem"`
	AllocGPUs float64 `json:"alloc_gpus"`
	UsedGPUs  float64 `json:"used_gpus"`
	QueueTime float64 `json:"queue_time"`
	RunTime   float64 `json:"run_time"`
	JobCount  int64   `json:"job_count"`

	AllocCPUHours    float64 `json:"-"`
	CPUEfficiency    float64 `json:"-"`
	MemoryEfficiency float64 `json:"-"`
}

// Metric returns the named public metric's value. The second return is
// false for names outside the vocabulary.
func (r *AggregatedRow) Metric(name string) (float64, bool) {
	switch name {
	case MetricReqCPUs:
		return r.ReqCPUs, true
	case MetricAllocCPUs:
		return r.AllocCPUs, true
	case MetricUsedCPUs:
		return r.UsedCPUs, true
	case MetricReqMem:
		return r.ReqMem, true
	case MetricMaxRSS:
		return r.MaxRSS, true
	case MetricUsedMem:
		return r.UsedMem, true
	case MetricAllocGPUs:
		return r.AllocGPUs, true
	case MetricUsedGPUs:
		return r.UsedGPUs, true
	case MetricQueueTime:
		return r.QueueTime, true
	case MetricRunTime:
		return r.RunTime, true
	case MetricJobCount:
		return float64(r.JobCount), true
	}
	return 0, false
}
