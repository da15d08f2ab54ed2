package cleaning

import "log/slog"

// Observer receives diagnostic events emitted while the pipeline runs. The
// stream is advisory: dropping every event must not change the cleaned output.
type Observer interface {
	// StageStarted fires before a stage runs, with the current row count.
	StageStarted(stage string, rows int)
	// StageCompleted fires after a stage runs, with the surviving row count.
	StageCompleted(stage string, rows int)
	// RowsRemoved reports rows dropped by a stage.
	RowsRemoved(stage string, count int)
	// CellsChanged reports how many cells in a column a stage rewrote.
	CellsChanged(stage, column string, count int)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) StageStarted(string, int)         {}
func (NopObserver) StageCompleted(string, int)       {}
func (NopObserver) RowsRemoved(string, int)          {}
func (NopObserver) CellsChanged(string, string, int) {}

// LogObserver forwards pipeline diagnostics to a slog logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an observer backed by the given logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) StageStarted(stage string, rows int) {
	o.logger.Debug("stage started",
		slog.String("stage", stage),
		slog.Int("rows", rows))
}

func (o *LogObserver) StageCompleted(stage string, rows int) {
	o.logger.Info("stage completed",
		slog.String("stage", stage),
		slog.Int("rows", rows))
}

func (o *LogObserver) RowsRemoved(stage string, count int) {
	o.logger.Info("rows removed",
		slog.String("stage", stage),
		slog.Int("count", count))
}

func (o *LogObserver) CellsChanged(stage, column string, count int) {
	if count == 0 {
		return
	}
	o.logger.Info("cells changed",
		slog.String("stage", stage),
		slog.String("column", column),
		slog.Int("count", count))
}
