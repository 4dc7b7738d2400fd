package submissionservice

import (
	"log/slog"

	guardapp "brandloop/contexts/identity-access/access-guard/application"
	httpadapter "brandloop/contexts/marketplace/submission-service/adapters/http"
	"brandloop/contexts/marketplace/submission-service/adapters/memory"
	"brandloop/contexts/marketplace/submission-service/application/commands"
	"brandloop/contexts/marketplace/submission-service/application/queries"
	"brandloop/contexts/marketplace/submission-service/domain/entities"
	"brandloop/contexts/marketplace/submission-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Submissions ports.SubmissionRepository
	Directory   ports.EngagementDirectory
	Guard       guardapp.Guard
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createSubmission := commands.CreateSubmissionUseCase{
		Submissions: deps.Submissions,
		Directory:   deps.Directory,
		Guard:       deps.Guard,
		Clock:       deps.Clock,
		IDGen:       deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateSubmission := commands.UpdateSubmissionUseCase{
		Submissions: deps.Submissions,
		Guard:       deps.Guard,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	reviewSubmission := commands.ReviewSubmissionUseCase{
		Submissions: deps.Submissions,
		Directory:   deps.Directory,
		Guard:       deps.Guard,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	engagementSubmissions := queries.EngagementSubmissionsUseCase{
		Submissions: deps.Submissions,
		Directory:   deps.Directory,
		Guard:       deps.Guard,
		Logger:      deps.Logger,
	}
	campaignSubmissions := queries.CampaignSubmissionsUseCase{
		Submissions: deps.Submissions,
		Directory:   deps.Directory,
		Guard:       deps.Guard,
		Logger:      deps.Logger,
	}
	mySubmissions := queries.MySubmissionsUseCase{
		Submissions: deps.Submissions,
		Directory:   deps.Directory,
		Guard:       deps.Guard,
		Logger:      deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateSubmission:      createSubmission,
			UpdateSubmission:      updateSubmission,
			ReviewSubmission:      reviewSubmission,
			EngagementSubmissions: engagementSubmissions,
			CampaignSubmissions:   campaignSubmissions,
			MySubmissions:         mySubmissions,
			Logger:                deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Submission, directory ports.EngagementDirectory, guard guardapp.Guard, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Submissions: store,
		Directory:   directory,
		Guard:       guard,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
