package engagementservice

import (
	"log/slog"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	httpadapter "brandloop/contexts/marketplace/engagement-service/adapters/http"
	"brandloop/contexts/marketplace/engagement-service/adapters/memory"
	"brandloop/contexts/marketplace/engagement-service/application"
	"brandloop/contexts/marketplace/engagement-service/application/commands"
	"brandloop/contexts/marketplace/engagement-service/application/queries"
	"brandloop/contexts/marketplace/engagement-service/domain/entities"
	"brandloop/contexts/marketplace/engagement-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Engagements ports.EngagementRepository
	Contracts   ports.ContractRepository
	Campaigns   ports.CampaignReader
	Guard       guardapp.Guard
	Chat        ports.ChatGateway
	Invalidator ports.ViewInvalidator
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	notifier := application.Notifier{
		Chat:        deps.Chat,
		Invalidator: deps.Invalidator,
		Logger:      deps.Logger,
	}

	inviteAmbassador := commands.InviteAmbassadorUseCase{
		Engagements: deps.Engagements,
		Campaigns:   deps.Campaigns,
		Guard:       deps.Guard,
		Chat:        deps.Chat,
		Notifier:    notifier,
		Clock:       deps.Clock,
		IDGen:       deps.IDGenerator,
		Logger:      deps.Logger,
	}
	acceptProposal := commands.AcceptProposalUseCase{
		Engagements: deps.Engagements,
		Guard:       deps.Guard,
		Notifier:    notifier,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	changeStatus := commands.ChangeStatusUseCase{
		Engagements: deps.Engagements,
		Guard:       deps.Guard,
		Notifier:    notifier,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	draftContract := commands.DraftContractUseCase{
		Engagements: deps.Engagements,
		Contracts:   deps.Contracts,
		Guard:       deps.Guard,
		Notifier:    notifier,
		Clock:       deps.Clock,
		IDGen:       deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateContract := commands.UpdateContractUseCase{
		Contracts: deps.Contracts,
		Guard:     deps.Guard,
		Notifier:  notifier,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	sendContract := commands.SendContractUseCase{
		Contracts: deps.Contracts,
		Guard:     deps.Guard,
		Notifier:  notifier,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	signContract := commands.SignContractUseCase{
		Contracts:   deps.Contracts,
		Engagements: deps.Engagements,
		Guard:       deps.Guard,
		Notifier:    notifier,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}

	getEngagement := queries.GetEngagementUseCase{
		Engagements: deps.Engagements,
		Guard:       deps.Guard,
		Logger:      deps.Logger,
	}
	listByCampaign := queries.ListCampaignEngagementsUseCase{
		Engagements: deps.Engagements,
		Guard:       deps.Guard,
		Logger:      deps.Logger,
	}
	myEngagements := queries.AmbassadorEngagementsUseCase{
		Engagements: deps.Engagements,
		Guard:       deps.Guard,
		Logger:      deps.Logger,
	}
	getContract := queries.GetContractUseCase{
		Contracts:   deps.Contracts,
		Engagements: deps.Engagements,
		Guard:       deps.Guard,
		Logger:      deps.Logger,
	}
	myContracts := queries.MyContractsUseCase{
		Contracts: deps.Contracts,
		Guard:     deps.Guard,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			InviteAmbassador: inviteAmbassador,
			AcceptProposal:   acceptProposal,
			ChangeStatus:     changeStatus,
			DraftContract:    draftContract,
			UpdateContract:   updateContract,
			SendContract:     sendContract,
			SignContract:     signContract,
			GetEngagement:    getEngagement,
			ListByCampaign:   listByCampaign,
			MyEngagements:    myEngagements,
			GetContract:      getContract,
			MyContracts:      myContracts,
			Logger:           deps.Logger,
		},
	}
}

// InMemoryDependencies carries the cross-context collaborators that the
// in-memory variant cannot build on its own.
type InMemoryDependencies struct {
	Campaigns   ports.CampaignReader
	Guard       guardapp.Guard
	Chat        ports.ChatGateway
	Invalidator ports.ViewInvalidator
	Logger      *slog.Logger
}

func NewInMemoryModule(seed []entities.Engagement, deps InMemoryDependencies) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Engagements: store,
		Contracts:   store,
		Campaigns:   deps.Campaigns,
		Guard:       deps.Guard,
		Chat:        deps.Chat,
		Invalidator: deps.Invalidator,
		Clock:       store,
		IDGenerator: store,
		Logger:      deps.Logger,
	})
	module.Store = store
	return module
}
