package services

import (
	"context"

	"task-export/internal/domain"
	"task-export/internal/logging"
	"task-export/internal/repository/store"
)

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	repo       store.Repository
	mapper     *domain.Mapper
	normalizer DateNormalizer
	formatter  RowFormatter
	assembler  TableAssembler
}

// NewExportService creates a new ExportService instance
func NewExportService(repo store.Repository, normalizer DateNormalizer, formatter RowFormatter, assembler TableAssembler) ExportService {
	return &exportServiceImpl{
		repo:       repo,
		mapper:     domain.NewMapper(),
		normalizer: normalizer,
		formatter:  formatter,
		assembler:  assembler,
	}
}

// Export returns the header and one row per task of projectID created
// between from and to. Rows keep the order storage returned them in. Any
// error aborts the whole export; no partial table is returned.
func (e *exportServiceImpl) Export(ctx context.Context, projectID int64, from, to domain.DateBound) (domain.ExportTable, error) {
	// 1. Normalize the bounds
	bounds, err := e.normalizer.Normalize(from, to)
	if err != nil {
		return nil, err
	}
	fromEpoch, toEpoch := bounds.QueryBounds()

	// 2. Fetch joined rows
	dbRows, err := e.repo.FetchTasksInRange(ctx, projectID, fromEpoch, toEpoch)
	if err != nil {
		return nil, err
	}
	logging.Debugf("export of project %d: %d rows in [%d, %d]\n", projectID, len(dbRows), fromEpoch, toEpoch)

	// 3. Format each row
	rows := e.mapper.TaskRow.FromDatabaseSlice(dbRows)
	formatted := make([]domain.ExportedRow, 0, len(rows))
	for _, row := range rows {
		out, err := e.formatter.Format(row)
		if err != nil {
			return nil, err
		}
		formatted = append(formatted, out)
	}

	// 4. Assemble
	return e.assembler.Assemble(formatted), nil
}
