package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"

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

func (r *Repository) CreateEngagement(ctx context.Context, engagement entities.Engagement) error {
	row := engagementModelFromEntity(engagement)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyInvited
		}
		return err
	}
	return nil
}

func (r *Repository) GetEngagement(ctx context.Context, engagementID string) (entities.Engagement, error) {
	var row engagementModel
	err := r.db.WithContext(ctx).
		Where("engagement_id = ?", strings.TrimSpace(engagementID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Engagement{}, domainerrors.ErrEngagementNotFound
		}
		return entities.Engagement{}, err
	}
	return row.toEntity(), nil
}

// LatestByThread picks the most recent engagement for the thread. Threads can
// accumulate several invitations over time and only the newest one is actionable.
func (r *Repository) LatestByThread(ctx context.Context, chatThreadID string, ambassadorID string) (entities.Engagement, error) {
	var row engagementModel
	err := r.db.WithContext(ctx).
		Where("chat_thread_id = ? AND ambassador_id = ?", strings.TrimSpace(chatThreadID), strings.TrimSpace(ambassadorID)).
		Order("created_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Engagement{}, domainerrors.ErrProposalNotFound
		}
		return entities.Engagement{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) LiveEngagement(ctx context.Context, campaignID string, ambassadorID string) (entities.Engagement, error) {
	var row engagementModel
	err := r.db.WithContext(ctx).
		Where(
			"campaign_id = ? AND ambassador_id = ? AND status <> ?",
			strings.TrimSpace(campaignID),
			strings.TrimSpace(ambassadorID),
			string(entities.EngagementStatusTerminated),
		).
		Order("created_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Engagement{}, domainerrors.ErrEngagementNotFound
		}
		return entities.Engagement{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListByCampaign(ctx context.Context, campaignID string) ([]entities.Engagement, error) {
	var rows []engagementModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Engagement, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListByAmbassador(
	ctx context.Context,
	ambassadorID string,
	statuses []entities.EngagementStatus,
) ([]entities.Engagement, error) {
	tx := r.db.WithContext(ctx).
		Model(&engagementModel{}).
		Where("ambassador_id = ?", strings.TrimSpace(ambassadorID))
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		tx = tx.Where("status IN ?", values)
	}

	var rows []engagementModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Engagement, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// TransitionStatus performs a conditional update so that two concurrent
// writers cannot both move the same engagement out of the same status.
func (r *Repository) TransitionStatus(
	ctx context.Context,
	engagementID string,
	from entities.EngagementStatus,
	to entities.EngagementStatus,
	now time.Time,
	selectedAt *time.Time,
) (entities.Engagement, error) {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": now.UTC(),
	}
	if selectedAt != nil {
		updates["selected_at"] = selectedAt.UTC()
	}

	result := r.db.WithContext(ctx).
		Model(&engagementModel{}).
		Where("engagement_id = ? AND status = ?", strings.TrimSpace(engagementID), string(from)).
		Updates(updates)
	if result.Error != nil {
		return entities.Engagement{}, result.Error
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or somebody else changed the status first.
		var row engagementModel
		err := r.db.WithContext(ctx).
			Where("engagement_id = ?", strings.TrimSpace(engagementID)).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.Engagement{}, domainerrors.ErrEngagementNotFound
			}
			return entities.Engagement{}, err
		}
		return entities.Engagement{}, domainerrors.ErrStatusConflict
	}

	return r.GetEngagement(ctx, engagementID)
}

func (r *Repository) CreateContract(ctx context.Context, contract entities.Contract) error {
	row := contractModelFromEntity(contract)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrContractAlreadyDrafted
		}
		return err
	}
	return nil
}

func (r *Repository) GetContract(ctx context.Context, contractID string) (entities.Contract, error) {
	var row contractModel
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", strings.TrimSpace(contractID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Contract{}, domainerrors.ErrContractNotFound
		}
		return entities.Contract{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateContract(ctx context.Context, contract entities.Contract) error {
	result := r.db.WithContext(ctx).
		Model(&contractModel{}).
		Where("contract_id = ?", strings.TrimSpace(contract.ContractID)).
		Updates(contractUpdatesFromEntity(contract))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrContractNotFound
	}
	return nil
}

func (r *Repository) ContractByEngagement(ctx context.Context, engagementID string) (entities.Contract, error) {
	var row contractModel
	err := r.db.WithContext(ctx).
		Where("campaign_ambassador_id = ?", strings.TrimSpace(engagementID)).
		Order("created_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Contract{}, domainerrors.ErrContractNotFound
		}
		return entities.Contract{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListContractsByClient(ctx context.Context, clientID string) ([]entities.Contract, error) {
	var rows []contractModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", strings.TrimSpace(clientID)).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Contract, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListContractsByAmbassador(ctx context.Context, ambassadorID string) ([]entities.Contract, error) {
	var rows []contractModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN campaign_ambassadors ON campaign_ambassadors.engagement_id = contracts.campaign_ambassador_id").
		Where("campaign_ambassadors.ambassador_id = ?", strings.TrimSpace(ambassadorID)).
		Order("contracts.created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Contract, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// engagementModel maps to campaign_ambassadors. The table carries a partial
// unique index that gorm tags cannot express; CreateEngagement's unique
// violation handling depends on it:
//
//	CREATE UNIQUE INDEX uniq_live_campaign_ambassador
//	    ON campaign_ambassadors (campaign_id, ambassador_id)
//	    WHERE status <> 'terminated';
type engagementModel struct {
	EngagementID string     `gorm:"column:engagement_id;primaryKey"`
	CampaignID   string     `gorm:"column:campaign_id"`
	AmbassadorID string     `gorm:"column:ambassador_id"`
	ChatThreadID string     `gorm:"column:chat_thread_id"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	SelectedAt   *time.Time `gorm:"column:selected_at"`
}

func (engagementModel) TableName() string {
	return "campaign_ambassadors"
}

func engagementModelFromEntity(item entities.Engagement) engagementModel {
	return engagementModel{
		EngagementID: strings.TrimSpace(item.EngagementID),
		CampaignID:   strings.TrimSpace(item.CampaignID),
		AmbassadorID: strings.TrimSpace(item.AmbassadorID),
		ChatThreadID: strings.TrimSpace(item.ChatThreadID),
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt.UTC(),
		UpdatedAt:    item.UpdatedAt.UTC(),
		SelectedAt:   normalizeOptionalTime(item.SelectedAt),
	}
}

func (m engagementModel) toEntity() entities.Engagement {
	return entities.Engagement{
		EngagementID: m.EngagementID,
		CampaignID:   m.CampaignID,
		AmbassadorID: m.AmbassadorID,
		ChatThreadID: m.ChatThreadID,
		Status:       entities.EngagementStatus(m.Status),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
		SelectedAt:   normalizeOptionalTime(m.SelectedAt),
	}
}

type contractModel struct {
	ContractID           string     `gorm:"column:contract_id;primaryKey"`
	EngagementID         string     `gorm:"column:campaign_ambassador_id"`
	ClientID             string     `gorm:"column:client_id"`
	ContractText         string     `gorm:"column:contract_text"`
	TermsAccepted        bool       `gorm:"column:terms_accepted"`
	Status               string     `gorm:"column:status"`
	PaymentType          string     `gorm:"column:payment_type"`
	TargetImpressions    *int       `gorm:"column:target_impressions"`
	CostPerCPM           *float64   `gorm:"column:cost_per_cpm"`
	StartDate            *time.Time `gorm:"column:start_date"`
	UsageRightsDuration  string     `gorm:"column:usage_rights_duration"`
	ClientSignedAt       *time.Time `gorm:"column:client_signed_at"`
	AmbassadorSignedAt   *time.Time `gorm:"column:ambassador_signed_at"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`
}

func (contractModel) TableName() string {
	return "contracts"
}

func contractModelFromEntity(item entities.Contract) contractModel {
	return contractModel{
		ContractID:          strings.TrimSpace(item.ContractID),
		EngagementID:        strings.TrimSpace(item.EngagementID),
		ClientID:            strings.TrimSpace(item.ClientID),
		ContractText:        item.ContractText,
		TermsAccepted:       item.TermsAccepted,
		Status:              string(item.Status),
		PaymentType:         string(item.PaymentType),
		TargetImpressions:   item.TargetImpressions,
		CostPerCPM:          item.CostPerCPM,
		StartDate:           normalizeOptionalTime(item.StartDate),
		UsageRightsDuration: strings.TrimSpace(item.UsageRightsDuration),
		ClientSignedAt:      normalizeOptionalTime(item.ClientSignedAt),
		AmbassadorSignedAt:  normalizeOptionalTime(item.AmbassadorSignedAt),
		CreatedAt:           item.CreatedAt.UTC(),
		UpdatedAt:           item.UpdatedAt.UTC(),
	}
}

func contractUpdatesFromEntity(item entities.Contract) map[string]any {
	row := contractModelFromEntity(item)
	return map[string]any{
		"contract_text":         row.ContractText,
		"terms_accepted":        row.TermsAccepted,
		"status":                row.Status,
		"payment_type":          row.PaymentType,
		"target_impressions":    row.TargetImpressions,
		"cost_per_cpm":          row.CostPerCPM,
		"start_date":            row.StartDate,
		"usage_rights_duration": row.UsageRightsDuration,
		"client_signed_at":      row.ClientSignedAt,
		"ambassador_signed_at":  row.AmbassadorSignedAt,
		"updated_at":            row.UpdatedAt,
	}
}

func (m contractModel) toEntity() entities.Contract {
	return entities.Contract{
		ContractID:          m.ContractID,
		EngagementID:        m.EngagementID,
		ClientID:            m.ClientID,
		ContractText:        m.ContractText,
		TermsAccepted:       m.TermsAccepted,
		Status:              entities.ContractStatus(m.Status),
		PaymentType:         entities.PaymentType(m.PaymentType),
		TargetImpressions:   m.TargetImpressions,
		CostPerCPM:          m.CostPerCPM,
		StartDate:           normalizeOptionalTime(m.StartDate),
		UsageRightsDuration: m.UsageRightsDuration,
		ClientSignedAt:      normalizeOptionalTime(m.ClientSignedAt),
		AmbassadorSignedAt:  normalizeOptionalTime(m.AmbassadorSignedAt),
		CreatedAt:           m.CreatedAt.UTC(),
		UpdatedAt:           m.UpdatedAt.UTC(),
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
