package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"brandloop/contexts/identity-access/access-guard/domain/entities"
	domainerrors "brandloop/contexts/identity-access/access-guard/domain/errors"

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
	return &Repository{db: db, logger: logger}
}

func (r *Repository) ClientProfileByUser(ctx context.Context, userID string) (entities.ClientProfile, error) {
	var row clientProfileModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ClientProfile{}, domainerrors.ErrClientProfileNotFound
		}
		return entities.ClientProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) AmbassadorProfileByUser(ctx context.Context, userID string) (entities.AmbassadorProfile, error) {
	var row ambassadorProfileModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AmbassadorProfile{}, domainerrors.ErrAmbassadorProfileNotFound
		}
		return entities.AmbassadorProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) AmbassadorProfileByID(ctx context.Context, profileID string) (entities.AmbassadorProfile, error) {
	var row ambassadorProfileModel
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", strings.TrimSpace(profileID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AmbassadorProfile{}, domainerrors.ErrAmbassadorProfileNotFound
		}
		return entities.AmbassadorProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CampaignOwner(ctx context.Context, campaignID string) (string, error) {
	var owner string
	err := r.db.WithContext(ctx).
		Table("campaigns").
		Select("client_id").
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Take(&owner).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrAccessDenied
		}
		return "", err
	}
	return owner, nil
}

func (r *Repository) EngagementAmbassador(ctx context.Context, engagementID string) (string, error) {
	var ambassadorID string
	err := r.db.WithContext(ctx).
		Table("campaign_ambassadors").
		Select("ambassador_id").
		Where("engagement_id = ?", strings.TrimSpace(engagementID)).
		Take(&ambassadorID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrAccessDenied
		}
		return "", err
	}
	return ambassadorID, nil
}

type clientProfileModel struct {
	ProfileID   string `gorm:"column:profile_id;primaryKey"`
	UserID      string `gorm:"column:user_id"`
	CompanyName string `gorm:"column:company_name"`
}

func (clientProfileModel) TableName() string {
	return "client_profiles"
}

func (m clientProfileModel) toEntity() entities.ClientProfile {
	return entities.ClientProfile{
		ProfileID:   m.ProfileID,
		UserID:      m.UserID,
		CompanyName: m.CompanyName,
	}
}

type ambassadorProfileModel struct {
	ProfileID string `gorm:"column:profile_id;primaryKey"`
	UserID    string `gorm:"column:user_id"`
	FullName  string `gorm:"column:full_name"`
}

func (ambassadorProfileModel) TableName() string {
	return "ambassador_profiles"
}

func (m ambassadorProfileModel) toEntity() entities.AmbassadorProfile {
	return entities.AmbassadorProfile{
		ProfileID: m.ProfileID,
		UserID:    m.UserID,
		FullName:  m.FullName,
	}
}
