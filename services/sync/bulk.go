package sync

import (
	"context"

	"go.uber.org/zap"

	"medistay/models"
	"medistay/utils"
)

// BulkImport deduplicates the batch in memory (first occurrence per
// bookingId wins) and issues one unordered bulk insert. It trades the
// per-item duplicate-against-store check for throughput: records persisted
// by a prior run are only caught by the unique index and come back as
// conflicts. Callers pick this mode per batch size and risk tolerance.
func (s *DefaultSyncService) BulkImport(ctx context.Context, entries []models.LocalBooking) (*models.SyncReport, error) {
	report := &models.SyncReport{Errors: []models.SyncItemError{}}
	if len(entries) == 0 {
		return report, nil
	}

	seen := make(map[string]bool, len(entries))
	var records []models.Booking
	var recordIDs []string // client booking id per records index, for failure reporting

	for _, entry := range entries {
		if entry.BookingID != "" {
			if seen[entry.BookingID] {
				report.Duplicates++
				continue
			}
			seen[entry.BookingID] = true
		}

		rec, err := s.normalize(entry)
		if err != nil {
			report.Errors = append(report.Errors, models.SyncItemError{
				BookingID: entry.BookingID,
				Error:     err.Error(),
			})
			continue
		}
		records = append(records, *rec)
		recordIDs = append(recordIDs, entry.BookingID)
	}

	if len(records) > 0 {
		res, err := s.Repo.InsertManyUnordered(ctx, records)
		if err != nil {
			// The bulk mechanism itself failed; nothing reliable to report.
			return nil, err
		}
		report.Synced = res.Inserted
		for _, f := range res.Failures {
			if f.Conflict {
				report.Duplicates++
				continue
			}
			report.Errors = append(report.Errors, models.SyncItemError{
				BookingID: recordIDs[f.Index],
				Error:     f.Message,
			})
		}
	}

	utils.GetLogger().Info("bulk booking import finished",
		zap.Int("batch", len(entries)),
		zap.Int("synced", report.Synced),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("errors", len(report.Errors)),
	)
	s.finish(ctx, report)
	return report, nil
}
