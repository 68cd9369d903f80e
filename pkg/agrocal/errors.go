package agrocal

import (
	"errors"
	"fmt"

	"github.com/samankwah/agrocal-go/pkg/agrocal/parser"
	"github.com/samankwah/agrocal-go/pkg/agrocal/timeline"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrNoTimeline indicates a worksheet without any month, week or date header.
var ErrNoTimeline = timeline.ErrNoHeader

// ErrEmptySheet indicates a worksheet without any data.
var ErrEmptySheet = parser.ErrEmptySheet

// Stages of a worksheet parse, as reported by SheetError.
const (
	StageDecode   = "decode"
	StageTimeline = "timeline"
	StageClassify = "classify"
	StageSchedule = "schedule"
)

// SheetError represents an error while parsing one worksheet.
type SheetError struct {
	SheetName string
	Stage     string // "decode", "timeline", "classify", "schedule"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("parse error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
