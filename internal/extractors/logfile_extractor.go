package extractors

import (
	"bufio"
	"context"
	"os"
	"strings"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/loggers"
)

type logFileExtractor struct {
	path string
}

// NewLogFileExtractor returns an Extractor that reads a pipe-separated
// accounting dump (sacct -P output with a header line) instead of invoking
// sacct. Query filters that sacct would apply server-side are applied while
// reading.
func NewLogFileExtractor(path string) Extractor {
	return &logFileExtractor{path: path}
}

func (l *logFileExtractor) Extract(ctx context.Context, query Query) ([]*models.RawJobRecord, error) {
	logger := loggers.Ctx(ctx)

	f, err := os.Open(l.path)
	if err != nil {
		return nil, errLogFileUnreadable(l.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errLogFileUnreadable(l.path, err)
		}
		// An empty file has no header at all.
		return nil, errMissingColumn(requiredColumns[0], nil)
	}

	header := strings.Split(scanner.Text(), "|")
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := pos[col]; !ok {
			return nil, errMissingColumn(col, nil)
		}
	}

	records := make([]*models.RawJobRecord, 0, 256)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		cells, ok := splitRow(line, len(header))
		if !ok {
			metricRowsSkippedTotal.WithLabelValues(sourceLogFile).Inc()
			continue
		}

		record := rowToRecord(cells, pos)
		if !matchesQuery(record, query) {
			metricRowsSkippedTotal.WithLabelValues(sourceLogFile).Inc()
			continue
		}

		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errLogFileUnreadable(l.path, err)
	}

	metricRecordsExtractedTotal.WithLabelValues(sourceLogFile).Add(float64(len(records)))
	logger.Debug().Int(loggers.FieldRecordCount, len(records)).Msgf("read accounting dump %s", l.path)

	return records, nil
}

// matchesQuery applies the filters sacct would have applied server-side.
// The time window matches on submit time, falling back to start time; rows
// whose timestamps cannot be read at all pass through for the normalizer to
// judge.
func matchesQuery(record *models.RawJobRecord, query Query) bool {
	if query.Account != "" && record.Account != query.Account {
		return false
	}
	if query.Partition != "" && record.Partition != query.Partition {
		return false
	}
	if query.User != "" && record.User != query.User {
		return false
	}
	if query.State != "" && !strings.EqualFold(record.State, query.State) {
		return false
	}

	submit, ok := models.ParseRecordTime(record.Submit)
	if !ok {
		submit, ok = models.ParseRecordTime(record.Start)
	}
	if ok {
		if submit.Before(query.Start) || !submit.Before(query.End) {
			return false
		}
	}

	return true
}
