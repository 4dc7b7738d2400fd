package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"brandloop/contexts/marketplace/campaign-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/campaign-service/domain/errors"
	"brandloop/contexts/marketplace/campaign-service/ports"

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

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCampaignInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateCampaign(ctx context.Context, campaign entities.Campaign) error {
	result := r.db.WithContext(ctx).
		Model(&campaignModel{}).
		Where("campaign_id = ?", strings.TrimSpace(campaign.CampaignID)).
		Updates(campaignUpdatesFromEntity(campaign))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) DeleteCampaign(ctx context.Context, campaignID string) error {
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Delete(&campaignModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) ListCampaigns(ctx context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	tx := r.db.WithContext(ctx).Model(&campaignModel{})
	if strings.TrimSpace(filter.ClientID) != "" {
		tx = tx.Where("client_id = ?", strings.TrimSpace(filter.ClientID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []campaignModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// CampaignTitle serves the engagement workflow's campaign lookup.
func (r *Repository) CampaignTitle(ctx context.Context, campaignID string) (string, error) {
	item, err := r.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	return item.Title, nil
}

type campaignModel struct {
	CampaignID      string     `gorm:"column:campaign_id;primaryKey"`
	ClientID        string     `gorm:"column:client_id"`
	Title           string     `gorm:"column:title"`
	Description     string     `gorm:"column:description"`
	BudgetMin       float64    `gorm:"column:budget_min"`
	BudgetMax       float64    `gorm:"column:budget_max"`
	Deadline        *time.Time `gorm:"column:deadline"`
	Requirements    string     `gorm:"column:requirements"`
	ProposalMessage string     `gorm:"column:proposal_message"`
	MaxAmbassadors  int        `gorm:"column:max_ambassadors"`
	Status          string     `gorm:"column:status"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "campaigns"
}

func campaignModelFromEntity(item entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID:      strings.TrimSpace(item.CampaignID),
		ClientID:        strings.TrimSpace(item.ClientID),
		Title:           strings.TrimSpace(item.Title),
		Description:     item.Description,
		BudgetMin:       item.BudgetMin,
		BudgetMax:       item.BudgetMax,
		Deadline:        normalizeOptionalTime(item.Deadline),
		Requirements:    item.Requirements,
		ProposalMessage: item.ProposalMessage,
		MaxAmbassadors:  item.MaxAmbassadors,
		Status:          string(item.Status),
		CreatedAt:       item.CreatedAt.UTC(),
		UpdatedAt:       item.UpdatedAt.UTC(),
	}
}

func campaignUpdatesFromEntity(item entities.Campaign) map[string]any {
	row := campaignModelFromEntity(item)
	return map[string]any{
		"title":            row.Title,
		"description":      row.Description,
		"budget_min":       row.BudgetMin,
		"budget_max":       row.BudgetMax,
		"deadline":         row.Deadline,
		"requirements":     row.Requirements,
		"proposal_message": row.ProposalMessage,
		"max_ambassadors":  row.MaxAmbassadors,
		"status":           row.Status,
		"updated_at":       row.UpdatedAt,
	}
}

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID:      m.CampaignID,
		ClientID:        m.ClientID,
		Title:           m.Title,
		Description:     m.Description,
		BudgetMin:       m.BudgetMin,
		BudgetMax:       m.BudgetMax,
		Deadline:        normalizeOptionalTime(m.Deadline),
		Requirements:    m.Requirements,
		ProposalMessage: m.ProposalMessage,
		MaxAmbassadors:  m.MaxAmbassadors,
		Status:          entities.CampaignStatus(m.Status),
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
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
