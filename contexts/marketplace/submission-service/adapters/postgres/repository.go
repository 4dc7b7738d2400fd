package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"brandloop/contexts/marketplace/submission-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/submission-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateSubmission(ctx context.Context, submission entities.Submission) error {
	row := submissionModelFromEntity(submission)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidSubmissionInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetSubmission(ctx context.Context, submissionID string) (entities.Submission, error) {
	var row submissionModel
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", strings.TrimSpace(submissionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Submission{}, domainerrors.ErrSubmissionNotFound
		}
		return entities.Submission{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateSubmission(ctx context.Context, submission entities.Submission) error {
	row := submissionModelFromEntity(submission)
	result := r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Where("submission_id = ?", row.SubmissionID).
		Updates(map[string]any{
			"content_url": row.ContentURL,
			"ad_code":     row.AdCode,
			"status":      row.Status,
			"feedback":    row.Feedback,
			"reviewed_at": row.ReviewedAt,
			"created_at":  row.SubmittedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSubmissionNotFound
	}
	return nil
}

func (r *Repository) ListByEngagement(ctx context.Context, engagementID string) ([]entities.Submission, error) {
	var rows []submissionModel
	if err := r.db.WithContext(ctx).
		Where("campaign_ambassador_id = ?", strings.TrimSpace(engagementID)).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListByEngagements(ctx context.Context, engagementIDs []string) ([]entities.Submission, error) {
	if len(engagementIDs) == 0 {
		return []entities.Submission{}, nil
	}

	var rows []submissionModel
	if err := r.db.WithContext(ctx).
		Where("campaign_ambassador_id IN ?", engagementIDs).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func toEntities(rows []submissionModel) []entities.Submission {
	items := make([]entities.Submission, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

type submissionModel struct {
	SubmissionID string     `gorm:"column:submission_id;primaryKey"`
	EngagementID string     `gorm:"column:campaign_ambassador_id"`
	ContentURL   string     `gorm:"column:content_url"`
	AdCode       string     `gorm:"column:ad_code"`
	Status       string     `gorm:"column:status"`
	Feedback     string     `gorm:"column:feedback"`
	SubmittedAt  time.Time  `gorm:"column:created_at"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at"`
}

func (submissionModel) TableName() string {
	return "campaign_submissions"
}

func submissionModelFromEntity(item entities.Submission) submissionModel {
	return submissionModel{
		SubmissionID: strings.TrimSpace(item.SubmissionID),
		EngagementID: strings.TrimSpace(item.EngagementID),
		ContentURL:   strings.TrimSpace(item.ContentURL),
		AdCode:       strings.TrimSpace(item.AdCode),
		Status:       string(item.Status),
		Feedback:     item.Feedback,
		SubmittedAt:  item.SubmittedAt.UTC(),
		ReviewedAt:   normalizeOptionalTime(item.ReviewedAt),
	}
}

func (m submissionModel) toEntity() entities.Submission {
	return entities.Submission{
		SubmissionID: m.SubmissionID,
		EngagementID: m.EngagementID,
		ContentURL:   m.ContentURL,
		AdCode:       m.AdCode,
		Status:       entities.SubmissionStatus(m.Status),
		Feedback:     m.Feedback,
		SubmittedAt:  m.SubmittedAt.UTC(),
		ReviewedAt:   normalizeOptionalTime(m.ReviewedAt),
	}
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
