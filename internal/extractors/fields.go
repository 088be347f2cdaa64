package extractors

import (
	"math"
	"strconv"
	"strings"

	"slurm-plot/internal/models"
)

// fieldNames is the column set requested from sacct, spelled exactly as the
// sacct man page does. JobName must stay last: job names may contain `|`,
// and row parsing re-joins trailing fields into it.
var fieldNames = []string{
	"JobID",
	"User",
	"Account",
	"Partition",
	"State",
	"Submit",
	"Start",
	"End",
	"ReqCPUS",
	"AllocCPUS",
	"CPUTimeRAW",
	"ReqMem",
	"MaxRSS",
	"AllocTRES",
	"JobName",
}

// requiredColumns must all be present in an accounting dump header for the
// pipeline to run; the rest are optional and default to empty.
var requiredColumns = []string{
	"JobID",
	"State",
	"Submit",
	"Start",
	"End",
	"ReqCPUS",
	"AllocCPUS",
	"CPUTimeRAW",
	"ReqMem",
	"MaxRSS",
}

// splitRow splits one pipe-separated sacct row into exactly want cells.
// Rows with extra separators re-join the excess into the last cell, which
// holds the job name. Short rows return false.
func splitRow(line string, want int) ([]string, bool) {
	cells := strings.Split(line, "|")
	for len(cells) > want {
		cells[len(cells)-2] += "|" + cells[len(cells)-1]
		cells = cells[:len(cells)-1]
	}
	if len(cells) != want {
		return nil, false
	}
	return cells, true
}

// rowToRecord maps one parsed row into a RawJobRecord using pos, which maps
// column names to cell positions. Columns absent from pos yield empty cells.
func rowToRecord(cells []string, pos map[string]int) *models.RawJobRecord {
	cell := func(name string) string {
		i, ok := pos[name]
		if !ok || i >= len(cells) {
			return ""
		}
		return cells[i]
	}

	return &models.RawJobRecord{
		JobID:      cell("JobID"),
		JobName:    cell("JobName"),
		User:       cell("User"),
		Account:    cell("Account"),
		Partition:  cell("Partition"),
		State:      stripState(cell("State")),
		Submit:     cell("Submit"),
		Start:      cell("Start"),
		End:        cell("End"),
		ReqCPUS:    cell("ReqCPUS"),
		AllocCPUS:  cell("AllocCPUS"),
		CPUTimeRAW: cell("CPUTimeRAW"),
		ReqMemGB:   parseSlurmGB(cell("ReqMem")),
		MaxRSSGB:   parseSlurmGB(cell("MaxRSS")),
		GPUCount:   strconv.Itoa(parseAllocTRESGPUs(cell("AllocTRES"))),
	}
}

// stripState drops everything after the first word, so "CANCELLED by 1234"
// becomes "CANCELLED".
func stripState(state string) string {
	if loc := strings.IndexByte(state, ' '); loc != -1 {
		return state[:loc]
	}
	return state
}

// parseSlurmGB converts a Slurm memory cell ("64G", "4000M", "5135468K",
// "0.50T") to GB. Unsuffixed values are bytes. Empty, sentinel or
// unparsable cells become 0.
func parseSlurmGB(cell string) float64 {
	if cell == "" || cell == "Unknown" {
		return 0
	}

	mpy := float64(1)
	switch cell[len(cell)-1] {
	case 'T':
		mpy = 1024 * 1024 * 1024 * 1024
		cell = cell[:len(cell)-1]
	case 'G':
		mpy = 1024 * 1024 * 1024
		cell = cell[:len(cell)-1]
	case 'M':
		mpy = 1024 * 1024
		cell = cell[:len(cell)-1]
	case 'K':
		mpy = 1024
		cell = cell[:len(cell)-1]
	}

	n, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n * mpy / (1024 * 1024 * 1024)
}

// parseAllocTRESGPUs extracts the allocated GPU count from an AllocTRES
// cell such as "billing=8,cpu=4,gres/gpu=2,mem=64G,node=1". The plain
// gres/gpu entry is authoritative when present; otherwise model-specific
// entries (gres/gpu:a100=2) are summed.
func parseAllocTRESGPUs(cell string) int {
	if cell == "" {
		return 0
	}

	total := -1
	modelSum := 0
	for _, entry := range strings.Split(cell, ",") {
		rest, ok := strings.CutPrefix(entry, "gres/gpu")
		if !ok {
			continue
		}
		switch {
		case strings.HasPrefix(rest, "="):
			if n, err := strconv.Atoi(rest[1:]); err == nil {
				total = n
			}
		case strings.HasPrefix(rest, ":"):
			if _, countStr, found := strings.Cut(rest[1:], "="); found {
				if n, err := strconv.Atoi(countStr); err == nil {
					modelSum += n
				}
			}
		}
	}

	if total >= 0 {
		return total
	}
	return modelSum
}
