package processors

import (
	"context"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/loggers"
)

//go:generate mockgen -source=normalizer.go -destination=./mocks/normalizer_mock.go -package=mocks
type RecordNormalizer interface {
	// Normalize parses the timestamp cells of raw records and drops records
	// that cannot be placed on the time axis. The input slice is not mutated.
	Normalize(ctx context.Context, records []*models.RawJobRecord) []*models.NormalizedJobRecord
}

type recordNormalizer struct{}

func NewRecordNormalizer() RecordNormalizer {
	return &recordNormalizer{}
}

func (n *recordNormalizer) Normalize(ctx context.Context, records []*models.RawJobRecord) []*models.NormalizedJobRecord {
	logger := loggers.Ctx(ctx)

	normalized := make([]*models.NormalizedJobRecord, 0, len(records))
	dropped := 0
	for _, record := range records {
		submitTime, submitOK := models.ParseRecordTime(record.Submit)
		startTime, startOK := models.ParseRecordTime(record.Start)
		endTime, _ := models.ParseRecordTime(record.End)

		// A record with no usable submit time falls back to its start time;
		// queue time for such a record is naturally zero. With neither, the
		// record cannot be bucketed at all.
		if !submitOK {
			if !startOK {
				dropped++
				continue
			}
			submitTime = startTime
		}

		normalized = append(normalized, &models.NormalizedJobRecord{
			JobID:      record.JobID,
			User:       record.User,
			Account:    record.Account,
			Partition:  record.Partition,
			State:      record.State,
			SubmitTime: submitTime,
			StartTime:  startTime,
			EndTime:    endTime,
			ReqCPUS:    record.ReqCPUS,
			AllocCPUS:  record.AllocCPUS,
			CPUTimeRAW: record.CPUTimeRAW,
			ReqMemGB:   record.ReqMemGB,
			MaxRSSGB:   record.MaxRSSGB,
			GPUCount:   record.GPUCount,
		})
	}

	if dropped > 0 {
		metricRecordsDroppedTotal.WithLabelValues(reasonNoSubmitTime).Add(float64(dropped))
		logger.Debug().Int(loggers.FieldRecordCount, dropped).Msg("dropped records without a usable submit time")
	}

	return normalized
}
