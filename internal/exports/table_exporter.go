package exports

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/artifacts"
	"slurm-plot/internal/shared/loggers"
)

// Format names a table export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

//go:generate mockgen -source=table_exporter.go -destination=./mocks/table_exporter_mock.go -package=mocks
type TableExporter interface {
	// Export encodes the aggregated table and stores it under key. CSV
	// carries bucket_start plus the public metrics in vocabulary order;
	// JSON carries one object per row.
	Export(ctx context.Context, format Format, rows []*models.AggregatedRow, key string) (*artifacts.WriteResult, error)
}

type tableExporter struct {
	store artifacts.Store
}

func NewTableExporter(store artifacts.Store) TableExporter {
	return &tableExporter{store: store}
}

func (e *tableExporter) Export(ctx context.Context, format Format, rows []*models.AggregatedRow, key string) (*artifacts.WriteResult, error) {
	logger := loggers.Ctx(ctx)

	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		if err := encodeCSV(&buf, rows); err != nil {
			return nil, errInternalExportFailed(err)
		}
	case FormatJSON:
		if err := json.NewEncoder(&buf).Encode(rows); err != nil {
			return nil, errInternalExportFailed(err)
		}
	default:
		return nil, errUnsupportedFormat(string(format))
	}

	result, err := e.store.Write(ctx, key, &buf, artifacts.WriteOptions{AllowOverwrite: true})
	if err != nil {
		return nil, errInternalExportFailed(err)
	}

	metricTablesExportedTotal.WithLabelValues(string(format)).Inc()
	logger.Debug().Int(loggers.FieldRecordCount, len(rows)).Msgf("exported %d rows to %s", len(rows), result.Path)

	return result, nil
}

func encodeCSV(buf *bytes.Buffer, rows []*models.AggregatedRow) error {
	w := csv.NewWriter(buf)

	header := append([]string{"bucket_start"}, models.MetricNames...)
	if err := w.Write(header); err != nil {
		return err
	}

	record := make([]string, 0, len(header))
	for _, row := range rows {
		record = record[:0]
		record = append(record, row.BucketStart.UTC().Format(time.RFC3339))
		for _, name := range models.MetricNames {
			if name == models.MetricJobCount {
				record = append(record, strconv.FormatInt(row.JobCount, 10))
				continue
			}
			value, _ := row.Metric(name)
			record = append(record, strconv.FormatFloat(value, 'f', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
