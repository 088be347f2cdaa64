package models

import "time"

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SummaryStatistics reduces an aggregated table to one reporting object.
// The overall efficiency ratios are ratios of sums across the whole table,
// not means of the per-bucket ratios, so buckets with few jobs do not skew
// them.
type SummaryStatistics struct {
	TotalJobs               int64      `json:"total_jobs"`
	TotalCPUHoursRequested  float64    `json:"total_cpu_hours_requested"`
	TotalCPUHoursAllocated  float64    `json:"total_cpu_hours_allocated"`
	TotalCPUHoursUsed       float64    `json:"total_cpu_hours_used"`
	TotalMemoryRequestedGB  float64    `json:"total_memory_requested_gb"`
	TotalMemoryUsedGB       float64    `json:"total_memory_used_gb"`
	TotalGPUHours           float64    `json:"total_gpu_hours"`
	AvgQueueTimeHours       float64    `json:"avg_queue_time_hours"`
	AvgRunTimeHours         float64    `json:"avg_run_time_hours"`
	OverallCPUEfficiency    float64    `json:"overall_cpu_efficiency"`
	OverallMemoryEfficiency float64    `json:"overall_memory_efficiency"`
	DateRange               *DateRange `json:"date_range,omitempty"`
}
