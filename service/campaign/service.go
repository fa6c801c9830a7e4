package campaign

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/repository"
	"github.com/seedinglab/seedops/seeding"
)

// ErrProjectNotFound ...
var ErrProjectNotFound = errors.New("campaign: project not found")

// ErrInfluencerNotFound ...
var ErrInfluencerNotFound = errors.New("campaign: influencer not found")

// Service owns seeding projects and their influencers: CRUD, status
// transitions, bulk operations and the funnel report.
type Service struct {
	provider       repository.Provider
	projectRepo    repository.Project
	influencerRepo repository.Influencer
	logger         *zap.Logger
}

// NewService ...
func NewService(
	provider repository.Provider,
	projectRepo repository.Project,
	influencerRepo repository.Influencer,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:       provider,
		projectRepo:    projectRepo,
		influencerRepo: influencerRepo,
		logger:         logger,
	}
}

func mapNotFound(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}

//---------------------------------------
// Projects
//---------------------------------------

// CreateProject ...
func (s *Service) CreateProject(ctx context.Context, project model.SeedingProject) (model.SeedingProject, error) {
	if project.Status == "" {
		project.Status = model.ProjectStatusPlanning
	}
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.projectRepo.Insert(ctx, project)
		if err != nil {
			return err
		}
		project.ID = id
		return nil
	})
	return project, err
}

// GetProject ...
func (s *Service) GetProject(ctx context.Context, id int64) (model.SeedingProject, error) {
	project, err := s.projectRepo.Get(s.provider.Readonly(ctx), id)
	return project, mapNotFound(err, ErrProjectNotFound)
}

// ListProjects ...
func (s *Service) ListProjects(ctx context.Context) ([]model.SeedingProject, error) {
	return s.projectRepo.List(s.provider.Readonly(ctx))
}

// ProjectUpdate carries a targeted partial update; nil fields are untouched.
type ProjectUpdate struct {
	Name        *string
	Brand       *string
	ProductName *string
	StartDate   *time.Time
	EndDate     *time.Time
	TargetCount *int64
	Status      *model.ProjectStatus
	AssigneeID  *int64
}

// UpdateProject ...
func (s *Service) UpdateProject(ctx context.Context, id int64, update ProjectUpdate) (model.SeedingProject, error) {
	var project model.SeedingProject
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.projectRepo.GetForUpdate(ctx, id)
		if err != nil {
			return mapNotFound(err, ErrProjectNotFound)
		}

		if update.Name != nil {
			project.Name = *update.Name
		}
		if update.Brand != nil {
			project.Brand = *update.Brand
		}
		if update.ProductName != nil {
			project.ProductName = *update.ProductName
		}
		if update.StartDate != nil {
			project.StartDate = sql.NullTime{Valid: true, Time: *update.StartDate}
		}
		if update.EndDate != nil {
			project.EndDate = sql.NullTime{Valid: true, Time: *update.EndDate}
		}
		if update.TargetCount != nil {
			project.TargetCount = *update.TargetCount
		}
		if update.Status != nil {
			project.Status = *update.Status
		}
		if update.AssigneeID != nil {
			project.AssigneeID = sql.NullInt64{Valid: true, Int64: *update.AssigneeID}
		}

		return s.projectRepo.Update(ctx, project)
	})
	return project, err
}

// DeleteProject removes the project and all of its influencers.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		err := s.influencerRepo.DeleteByProject(ctx, id)
		if err != nil {
			return err
		}
		return s.projectRepo.Delete(ctx, id)
	})
}

//---------------------------------------
// Influencers
//---------------------------------------

// AddInfluencer lists a new influencer on a project at the listed stage.
func (s *Service) AddInfluencer(ctx context.Context, inf model.SeedingInfluencer) (model.SeedingInfluencer, error) {
	err := seeding.ValidateCommercialTerms(inf.SeedingType, inf.Fee)
	if err != nil {
		return model.SeedingInfluencer{}, err
	}

	inf.AccountID = seeding.NormalizeAccountID(inf.AccountID)
	inf.Status = seeding.StageListed
	inf.ListedAt = sql.NullTime{Valid: true, Time: time.Now()}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.influencerRepo.Insert(ctx, inf)
		if err != nil {
			return err
		}
		inf.ID = id
		return nil
	})
	return inf, err
}

// GetInfluencer ...
func (s *Service) GetInfluencer(ctx context.Context, id int64) (model.SeedingInfluencer, error) {
	inf, err := s.influencerRepo.Get(s.provider.Readonly(ctx), id)
	return inf, mapNotFound(err, ErrInfluencerNotFound)
}

// ListInfluencers ...
func (s *Service) ListInfluencers(ctx context.Context, projectID int64) ([]model.SeedingInfluencer, error) {
	return s.influencerRepo.ListByProject(s.provider.Readonly(ctx), projectID)
}

// DeleteInfluencer ...
func (s *Service) DeleteInfluencer(ctx context.Context, id int64) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.influencerRepo.Delete(ctx, id)
	})
}

// InfluencerUpdate carries a targeted partial update; nil fields are untouched.
type InfluencerUpdate struct {
	AccountName      *string
	FollowerCount    *int64
	FollowingCount   *int64
	Email            *string
	Phone            *string
	SeedingType      *seeding.SeedingType
	ContentType      *seeding.ContentType
	Fee              *decimal.Decimal
	Notes            *string
	ProductName      *string
	ProductPrice     *decimal.Decimal
	ExpectedUploadAt *time.Time

	Shipping    *model.ShippingInfo
	Performance *model.SeedingPerformance
}

// UpdateInfluencer applies a partial update inside one transaction.
func (s *Service) UpdateInfluencer(ctx context.Context, id int64, update InfluencerUpdate) (model.SeedingInfluencer, error) {
	var inf model.SeedingInfluencer
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		inf, err = s.influencerRepo.GetForUpdate(ctx, id)
		if err != nil {
			return mapNotFound(err, ErrInfluencerNotFound)
		}

		if update.AccountName != nil {
			inf.AccountName = *update.AccountName
		}
		if update.FollowerCount != nil {
			inf.FollowerCount = *update.FollowerCount
		}
		if update.FollowingCount != nil {
			inf.FollowingCount = *update.FollowingCount
		}
		if update.Email != nil {
			inf.Email = *update.Email
		}
		if update.Phone != nil {
			inf.Phone = *update.Phone
		}
		if update.SeedingType != nil {
			inf.SeedingType = *update.SeedingType
		}
		if update.ContentType != nil {
			inf.ContentType = *update.ContentType
		}
		if update.Fee != nil {
			inf.Fee = *update.Fee
		}
		if update.Notes != nil {
			inf.Notes = *update.Notes
		}
		if update.ProductName != nil {
			inf.ProductName = *update.ProductName
		}
		if update.ProductPrice != nil {
			inf.ProductPrice = decimal.NullDecimal{Valid: true, Decimal: *update.ProductPrice}
		}
		if update.ExpectedUploadAt != nil {
			inf.ExpectedUploadAt = sql.NullTime{Valid: true, Time: *update.ExpectedUploadAt}
		}
		if update.Shipping != nil {
			inf.ShippingInfo = *update.Shipping
		}
		if update.Performance != nil {
			inf.SeedingPerformance = *update.Performance
		}

		err = seeding.ValidateCommercialTerms(inf.SeedingType, inf.Fee)
		if err != nil {
			return err
		}
		return s.influencerRepo.Update(ctx, inf)
	})
	return inf, err
}
