package service

import (
	"context"
	"log/slog"

	"github.com/rohan-06-eng/cantilver-expense/internal/models"
	"github.com/rohan-06-eng/cantilver-expense/internal/storage"
)

// ReportService computes per-category spending summaries.
type ReportService struct {
	store storage.Store
}

// NewReportService creates a new ReportService with the given storage backend.
func NewReportService(store storage.Store) *ReportService {
	return &ReportService{store: store}
}

// SummarizeByCategory returns the sum of the user's expenses grouped by
// category name, ordered by category name. Categories without a matching
// expense are omitted. A user with no expenses gets an empty slice, not an
// error; callers render that as a "no data" notice.
func (s *ReportService) SummarizeByCategory(ctx context.Context, userID string) ([]models.CategoryTotal, error) {
	totals, err := s.store.SummarizeByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	slog.Debug("Report computed", "user_id", userID, "categories", len(totals))
	return totals, nil
}
