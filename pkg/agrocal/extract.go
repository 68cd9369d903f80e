package agrocal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
	"github.com/samankwah/agrocal-go/pkg/agrocal/parser"
)

// ParseFile parses every worksheet of an xlsx file.
func ParseFile(ctx context.Context, path string, opts Options) (*models.WorkbookCalendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return Parse(ctx, filepath.Base(path), data, opts)
}

// Parse decodes an xlsx package and parses every worksheet. A worksheet that
// fails is recorded in WorkbookCalendar.Failures; only an unreadable package
// or a cancelled context fails the call.
func Parse(ctx context.Context, name string, data []byte, opts Options) (*models.WorkbookCalendar, error) {
	cfg := opts.config()
	wb, err := parser.DecodeWorkbook(name, data, parser.DecodeOptions{
		HeaderRows: cfg.Timeline.HeaderScanRows,
	})
	if err != nil {
		return nil, err
	}
	return AssembleWorkbook(ctx, wb, opts)
}

// AssembleWorkbook parses the decoded worksheets concurrently, bounded by
// the configured parallelism.
func AssembleWorkbook(ctx context.Context, wb *models.Workbook, opts Options) (*models.WorkbookCalendar, error) {
	cfg := opts.config()
	log := opts.logger().With(zap.String("book", wb.BookName))

	if opts.Theme == nil {
		opts.Theme = wb.Theme
	}
	if opts.IndexedColors == nil {
		opts.IndexedColors = wb.IndexedColors
	}
	if opts.Hint == "" {
		opts.Hint = wb.BookName
	}

	result := &models.WorkbookCalendar{
		BookName: wb.BookName,
		Sheets:   make(map[string]models.CalendarDocument, len(wb.Sheets)),
		Failures: make(map[string]string),
	}
	for _, sheetName := range sortedKeys(wb.Skipped) {
		result.Failures[sheetName] = wb.Skipped[sheetName]
		log.Warn("sheet skipped", zap.String("sheet", sheetName), zap.String("reason", wb.Skipped[sheetName]))
	}

	docs := make([]*models.CalendarDocument, len(wb.Sheets))
	errs := make([]error, len(wb.Sheets))

	limit := cfg.Parallelism
	if limit <= 0 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, sheet := range wb.Sheets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i], errs[i] = Assemble(sheet, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, sheet := range wb.Sheets {
		if errs[i] != nil {
			result.Failures[sheet.Name] = errs[i].Error()
			log.Warn("sheet failed", zap.String("sheet", sheet.Name), zap.Error(errs[i]))
			continue
		}
		result.Sheets[sheet.Name] = *docs[i]
	}
	return result, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
