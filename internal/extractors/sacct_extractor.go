package extractors

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"slurm-plot/internal/models"
	"slurm-plot/internal/shared/loggers"
)

const (
	sourceSacct   = "sacct"
	sourceLogFile = "logfile"
)

// slurmTimeLayout is Slurm's local-time format, no zone offset.
const slurmTimeLayout = "2006-01-02T15:04:05"

// terminalStates is the default state filter. Accounting reports cover
// finished jobs unless the caller asks for one specific state.
var terminalStates = []string{
	"CANCELLED",
	"COMPLETED",
	"DEADLINE",
	"FAILED",
	"OUT_OF_MEMORY",
	"TIMEOUT",
}

// sacctColumnPositions maps column names to their cell position. sacct is
// invoked with --noheader, so positions follow the requested field order.
var sacctColumnPositions = func() map[string]int {
	pos := make(map[string]int, len(fieldNames))
	for i, name := range fieldNames {
		pos[name] = i
	}
	return pos
}()

type sacctExtractor struct {
	command string
	timeout time.Duration
}

// NewSacctExtractor returns an Extractor that shells out to the given sacct
// binary. Each invocation is bounded by timeout.
func NewSacctExtractor(command string, timeout time.Duration) Extractor {
	return &sacctExtractor{
		command: command,
		timeout: timeout,
	}
}

func (s *sacctExtractor) Extract(ctx context.Context, query Query) ([]*models.RawJobRecord, error) {
	logger := loggers.Ctx(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	args := buildSacctArgs(query)
	logger.Debug().Str(loggers.FieldComponent, "sacct_extractor").Msgf("running %s %s", s.command, strings.Join(args, " "))

	started := time.Now()
	cmd := exec.CommandContext(ctx, s.command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, errInternalSacctFailed(err)
		}
		return nil, errInternalSacctFailed(fmt.Errorf("%w: %s", err, msg))
	}
	metricExtractionDuration.WithLabelValues(sourceSacct).Observe(time.Since(started).Seconds())

	records := parseSacctOutput(ctx, &stdout)
	metricRecordsExtractedTotal.WithLabelValues(sourceSacct).Add(float64(len(records)))
	logger.Debug().Int(loggers.FieldRecordCount, len(records)).Msg("sacct extraction finished")

	return records, nil
}

// buildSacctArgs assembles the sacct argument list for a query. Without a
// user filter all users are queried; without a state filter the terminal
// states are.
func buildSacctArgs(query Query) []string {
	args := []string{"-P", "--noheader", "-o", strings.Join(fieldNames, ",")}

	if query.User == "" {
		args = append(args, "-a")
	} else {
		args = append(args, "-u", query.User)
	}

	state := query.State
	if state == "" {
		state = strings.Join(terminalStates, ",")
	}
	args = append(args, "-s", state)

	if query.Account != "" {
		args = append(args, "-A", query.Account)
	}
	if query.Partition != "" {
		args = append(args, "-r", query.Partition)
	}

	args = append(args,
		"-S", query.Start.Format(slurmTimeLayout),
		"-E", query.End.Format(slurmTimeLayout),
	)

	return args
}

func parseSacctOutput(ctx context.Context, r io.Reader) []*models.RawJobRecord {
	logger := loggers.Ctx(ctx)

	records := make([]*models.RawJobRecord, 0, 256)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		cells, ok := splitRow(line, len(fieldNames))
		if !ok {
			metricRowsSkippedTotal.WithLabelValues(sourceSacct).Inc()
			logger.Debug().Msgf("skipping malformed sacct row with %d cells", len(strings.Split(line, "|")))
			continue
		}

		records = append(records, rowToRecord(cells, sacctColumnPositions))
	}
	if err := scanner.Err(); err != nil {
		logger.Warn().Err(err).Msg("sacct output truncated while scanning")
	}

	return records
}
