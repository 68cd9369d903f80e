package agrocal

import (
	"go.uber.org/zap"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

// Diagnostics is the call-scoped debug context of one Assemble call. It
// records per-cell colour decisions until its trace budget is spent.
type Diagnostics struct {
	logger    *zap.Logger
	remaining int
	traced    int
	dropped   int
}

// NewDiagnostics returns a context that logs at most maxTraces cells.
func NewDiagnostics(logger *zap.Logger, maxTraces int) *Diagnostics {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxTraces < 0 {
		maxTraces = 0
	}
	return &Diagnostics{logger: logger, remaining: maxTraces}
}

// TraceCell logs one activation decision while budget remains.
func (d *Diagnostics) TraceCell(act models.Activity, p models.Period, cell models.Cell, entry models.ScheduleEntry) {
	if d.remaining == 0 {
		d.dropped++
		return
	}
	d.remaining--
	d.traced++

	fields := []zap.Field{
		zap.String("activity", act.Name),
		zap.Int("row", act.SourceRow),
		zap.Int("column", p.SourceColumn),
		zap.Int("period", p.Index),
		zap.String("fill", string(cell.Fill.Kind())),
		zap.Bool("active", entry.Active),
	}
	if entry.Active {
		fields = append(fields,
			zap.String("color", entry.Color),
			zap.String("color_source", string(entry.ColorSource)),
		)
	}
	d.logger.Debug("cell", fields...)
}

// Traced returns the number of cells logged.
func (d *Diagnostics) Traced() int { return d.traced }

// Dropped returns the number of cells not logged once the budget was spent.
func (d *Diagnostics) Dropped() int { return d.dropped }
