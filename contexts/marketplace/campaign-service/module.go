package campaignservice

import (
	"log/slog"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	httpadapter "brandloop/contexts/marketplace/campaign-service/adapters/http"
	"brandloop/contexts/marketplace/campaign-service/adapters/memory"
	"brandloop/contexts/marketplace/campaign-service/application/commands"
	"brandloop/contexts/marketplace/campaign-service/application/queries"
	"brandloop/contexts/marketplace/campaign-service/domain/entities"
	"brandloop/contexts/marketplace/campaign-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns   ports.CampaignRepository
	Guard       guardapp.Guard
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Guard:     deps.Guard,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	updateCampaign := commands.UpdateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Guard:     deps.Guard,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	changeStatus := commands.ChangeStatusUseCase{
		Campaigns: deps.Campaigns,
		Guard:     deps.Guard,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	deleteCampaign := commands.DeleteCampaignUseCase{
		Campaigns: deps.Campaigns,
		Guard:     deps.Guard,
		Logger:    deps.Logger,
	}
	getCampaign := queries.GetCampaignUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	myCampaigns := queries.MyCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Guard:     deps.Guard,
		Logger:    deps.Logger,
	}
	openCampaigns := queries.OpenCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign: createCampaign,
			UpdateCampaign: updateCampaign,
			ChangeStatus:   changeStatus,
			DeleteCampaign: deleteCampaign,
			GetCampaign:    getCampaign,
			MyCampaigns:    myCampaigns,
			OpenCampaigns:  openCampaigns,
			Logger:         deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Campaign, guard guardapp.Guard, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Campaigns:   store,
		Guard:       guard,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
