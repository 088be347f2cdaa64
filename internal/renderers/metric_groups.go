package renderers

import (
	"slurm-plot/internal/models"
)

// MetricGroup is one chart: related metrics sharing a y axis.
type MetricGroup struct {
	Title   string
	YLabel  string
	Metrics []string
}

// metricGroups fixes which metrics share a chart and in what order the
// charts appear. Selections are intersected against it; groups left with no
// metric are dropped.
var metricGroups = []MetricGroup{
	{
		Title:   "CPU Metrics",
		YLabel:  "CPU Count / Hours",
		Metrics: []string{models.MetricReqCPUs, models.MetricAllocCPUs, models.MetricUsedCPUs},
	},
	{
		Title:   "Memory Metrics",
		YLabel:  "Memory (GB)",
		Metrics: []string{models.MetricReqMem, models.MetricMaxRSS, models.MetricUsedMem},
	},
	{
		Title:   "GPU Metrics",
		YLabel:  "GPU Count / Hours",
		Metrics: []string{models.MetricAllocGPUs, models.MetricUsedGPUs},
	},
	{
		Title:   "Time Metrics",
		YLabel:  "Time (hours)",
		Metrics: []string{models.MetricQueueTime, models.MetricRunTime},
	},
	{
		Title:   "Job Count",
		YLabel:  "Number of Jobs",
		Metrics: []string{models.MetricJobCount},
	},
}

// MetricLabel is the human-readable series name for a public metric.
func MetricLabel(name string) string {
	switch name {
	case models.MetricReqCPUs:
		return "Requested CPUs"
	case models.MetricAllocCPUs:
		return "Allocated CPUs"
	case models.MetricUsedCPUs:
		return "Used CPU Hours"
	case models.MetricReqMem:
		return "Requested Memory (GB)"
	case models.MetricMaxRSS:
		return "Max Memory Used (GB)"
	case models.MetricUsedMem:
		return "Used Memory (GB)"
	case models.MetricAllocGPUs:
		return "Allocated GPUs"
	case models.MetricUsedGPUs:
		return "GPU Hours"
	case models.MetricQueueTime:
		return "Queue Time (hours)"
	case models.MetricRunTime:
		return "Run Time (hours)"
	case models.MetricJobCount:
		return "Job Count"
	}
	return name
}

// GroupMetrics intersects a metric selection with the fixed chart groups.
// Names outside the vocabulary are ignored; an empty selection means every
// metric. A selection that hits no group at all cannot be plotted.
func GroupMetrics(selection []string) ([]MetricGroup, error) {
	selected := func(string) bool { return true }
	if len(selection) > 0 {
		wanted := make(map[string]bool, len(selection))
		for _, name := range selection {
			wanted[name] = true
		}
		selected = func(name string) bool { return wanted[name] }
	}

	groups := make([]MetricGroup, 0, len(metricGroups))
	for _, group := range metricGroups {
		metrics := make([]string, 0, len(group.Metrics))
		for _, name := range group.Metrics {
			if selected(name) {
				metrics = append(metrics, name)
			}
		}
		if len(metrics) == 0 {
			continue
		}
		groups = append(groups, MetricGroup{Title: group.Title, YLabel: group.YLabel, Metrics: metrics})
	}

	if len(groups) == 0 {
		return nil, errNoValidMetrics(selection)
	}
	return groups, nil
}
