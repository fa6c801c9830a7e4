package messaging

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/outreach"
	"github.com/seedinglab/seedops/repository"
)

// ErrTemplateNotFound ...
var ErrTemplateNotFound = errors.New("messaging: template not found")

// Service owns outreach templates: CRUD, scope filtering, usage counting
// and rendering a template against an influencer.
type Service struct {
	provider       repository.Provider
	templateRepo   repository.Template
	influencerRepo repository.Influencer
	projectRepo    repository.Project
}

// NewService ...
func NewService(
	provider repository.Provider,
	templateRepo repository.Template,
	influencerRepo repository.Influencer,
	projectRepo repository.Project,
) *Service {
	return &Service{
		provider:       provider,
		templateRepo:   templateRepo,
		influencerRepo: influencerRepo,
		projectRepo:    projectRepo,
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTemplateNotFound
	}
	return err
}

// Create ...
func (s *Service) Create(ctx context.Context, tmpl model.OutreachTemplate) (model.OutreachTemplate, error) {
	if tmpl.SeedingType == "" {
		tmpl.SeedingType = model.ScopeAll
	}
	if tmpl.ContentType == "" {
		tmpl.ContentType = model.ScopeAll
	}
	if tmpl.Brand == "" {
		tmpl.Brand = model.ScopeAll
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.templateRepo.Insert(ctx, tmpl)
		if err != nil {
			return err
		}
		tmpl.ID = id
		return nil
	})
	return tmpl, err
}

// Get ...
func (s *Service) Get(ctx context.Context, id int64) (model.OutreachTemplate, error) {
	tmpl, err := s.templateRepo.Get(s.provider.Readonly(ctx), id)
	return tmpl, mapNotFound(err)
}

// ListFilter narrows templates by scope; empty fields match everything.
type ListFilter struct {
	SeedingType string
	ContentType string
	Brand       string
}

// List returns templates matching the filter, most used first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]model.OutreachTemplate, error) {
	templates, err := s.templateRepo.List(s.provider.Readonly(ctx))
	if err != nil {
		return nil, err
	}

	result := make([]model.OutreachTemplate, 0, len(templates))
	for _, tmpl := range templates {
		if tmpl.MatchesScope(filter.SeedingType, filter.ContentType, filter.Brand) {
			result = append(result, tmpl)
		}
	}
	return result, nil
}

// Update ...
func (s *Service) Update(ctx context.Context, tmpl model.OutreachTemplate) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.templateRepo.Update(ctx, tmpl)
	})
}

// Delete ...
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.templateRepo.Delete(ctx, id)
	})
}

// Use records one successful copy action and returns the template content.
func (s *Service) Use(ctx context.Context, id int64) (model.OutreachTemplate, error) {
	tmpl, err := s.Get(ctx, id)
	if err != nil {
		return model.OutreachTemplate{}, err
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.templateRepo.IncrementUsage(ctx, id)
	})
	if err != nil {
		return model.OutreachTemplate{}, err
	}

	tmpl.UsageCount++
	return tmpl, nil
}

// RenderInput supplies the values not derivable from the influencer row.
type RenderInput struct {
	AssigneeName string
	GuideLink    string
}

// RenderResult ...
type RenderResult struct {
	Content   string   `json:"content"`
	Variables []string `json:"variables"`
}

// Render fills a template with one influencer's values. Unknown tokens and
// tokens without a value remain visible in the output.
func (s *Service) Render(
	ctx context.Context, templateID int64, influencerID int64, input RenderInput,
) (RenderResult, error) {
	readCtx := s.provider.Readonly(ctx)

	tmpl, err := s.templateRepo.Get(readCtx, templateID)
	if err != nil {
		return RenderResult{}, mapNotFound(err)
	}
	inf, err := s.influencerRepo.Get(readCtx, influencerID)
	if err != nil {
		return RenderResult{}, err
	}
	project, err := s.projectRepo.Get(readCtx, inf.ProjectID)
	if err != nil {
		return RenderResult{}, err
	}

	values := map[string]string{
		outreach.VarInfluencerName: "@" + inf.AccountID,
		outreach.VarAccountName:    inf.AccountName,
		outreach.VarFollowerCount:  strconv.FormatInt(inf.FollowerCount, 10),
		outreach.VarProductName:    inf.ProductName,
		outreach.VarBrandName:      project.Brand,
		outreach.VarAssigneeName:   input.AssigneeName,
		outreach.VarGuideLink:      input.GuideLink,
	}
	if inf.Fee.IsPositive() {
		values[outreach.VarFee] = inf.Fee.String()
	}

	return RenderResult{
		Content:   outreach.ReplaceVariables(tmpl.Content, values),
		Variables: outreach.ExtractVariables(tmpl.Content),
	}, nil
}
