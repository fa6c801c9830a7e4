package guide

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/pkg/memtable"
	"github.com/seedinglab/seedops/pkg/util"
	"github.com/seedinglab/seedops/repository"
)

// ErrGuideNotFound covers both a missing row and a guide that is not
// public when looked up by slug.
var ErrGuideNotFound = errors.New("guide: not found")

// Service owns product guides. Public reads by slug go through the
// in-process cache since the public view is the only unauthenticated,
// high-traffic read path.
type Service struct {
	provider  repository.Provider
	guideRepo repository.Guide

	cache    *memtable.MemTable
	cacheTTL int
}

// NewService ...
func NewService(
	provider repository.Provider, guideRepo repository.Guide,
	cache *memtable.MemTable, cacheTTLSeconds int,
) *Service {
	return &Service{
		provider:  provider,
		guideRepo: guideRepo,
		cache:     cache,
		cacheTTL:  cacheTTLSeconds,
	}
}

func cacheKey(slug string) string {
	return "guide:" + slug
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGuideNotFound
	}
	return err
}

// Create ...
func (s *Service) Create(ctx context.Context, guide model.ProductGuide) (model.ProductGuide, error) {
	guide.IsPublic = false
	guide.PublicSlug = ""

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.guideRepo.Insert(ctx, guide)
		if err != nil {
			return err
		}
		guide.ID = id
		return nil
	})
	return guide, err
}

// Get ...
func (s *Service) Get(ctx context.Context, id int64) (model.ProductGuide, error) {
	guide, err := s.guideRepo.Get(s.provider.Readonly(ctx), id)
	return guide, mapNotFound(err)
}

// List ...
func (s *Service) List(ctx context.Context) ([]model.ProductGuide, error) {
	return s.guideRepo.List(s.provider.Readonly(ctx))
}

// GuideUpdate carries a targeted partial update; nil fields are untouched.
// Publication state changes only through Publish / Unpublish.
type GuideUpdate struct {
	Brand       *string
	ProductName *string
	Title       *string
	Body        *string
	Hashtags    *model.StringList
	Mentions    *model.StringList
	Dos         *model.StringList
	Donts       *model.StringList
	KeyPoints   *model.StringList
}

// Update applies a partial update and drops the cached public view.
func (s *Service) Update(ctx context.Context, id int64, update GuideUpdate) (model.ProductGuide, error) {
	var guide model.ProductGuide
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		guide, err = s.guideRepo.GetForUpdate(ctx, id)
		if err != nil {
			return mapNotFound(err)
		}

		if update.Brand != nil {
			guide.Brand = *update.Brand
		}
		if update.ProductName != nil {
			guide.ProductName = *update.ProductName
		}
		if update.Title != nil {
			guide.Title = *update.Title
		}
		if update.Body != nil {
			guide.Body = *update.Body
		}
		if update.Hashtags != nil {
			guide.Hashtags = *update.Hashtags
		}
		if update.Mentions != nil {
			guide.Mentions = *update.Mentions
		}
		if update.Dos != nil {
			guide.Dos = *update.Dos
		}
		if update.Donts != nil {
			guide.Donts = *update.Donts
		}
		if update.KeyPoints != nil {
			guide.KeyPoints = *update.KeyPoints
		}

		return s.guideRepo.Update(ctx, guide)
	})
	if err != nil {
		return model.ProductGuide{}, err
	}
	if guide.PublicSlug != "" {
		s.cache.Delete(cacheKey(guide.PublicSlug))
	}
	return guide, nil
}

// Delete ...
func (s *Service) Delete(ctx context.Context, id int64) error {
	guide, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.guideRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	if guide.PublicSlug != "" {
		s.cache.Delete(cacheKey(guide.PublicSlug))
	}
	return nil
}

// Publish makes the guide publicly addressable, minting the slug on first
// publish and keeping it stable afterwards.
func (s *Service) Publish(ctx context.Context, id int64) (model.ProductGuide, error) {
	var guide model.ProductGuide
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		guide, err = s.guideRepo.GetForUpdate(ctx, id)
		if err != nil {
			return mapNotFound(err)
		}

		if guide.PublicSlug == "" {
			guide.PublicSlug = util.SlugFromString(
				fmt.Sprintf("%d:%s:%d", guide.ID, guide.Title, time.Now().UnixNano()),
			)
		}
		guide.IsPublic = true
		return s.guideRepo.Update(ctx, guide)
	})
	return guide, err
}

// Unpublish ...
func (s *Service) Unpublish(ctx context.Context, id int64) error {
	var slug string
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		guide, err := s.guideRepo.GetForUpdate(ctx, id)
		if err != nil {
			return mapNotFound(err)
		}
		slug = guide.PublicSlug
		guide.IsPublic = false
		return s.guideRepo.Update(ctx, guide)
	})
	if err != nil {
		return err
	}
	if slug != "" {
		s.cache.Delete(cacheKey(slug))
	}
	return nil
}

// GetPublicBySlug serves the public guide view, cache first.
func (s *Service) GetPublicBySlug(ctx context.Context, slug string) (model.ProductGuide, error) {
	if data, ok := s.cache.Get(cacheKey(slug)); ok {
		var guide model.ProductGuide
		if err := json.Unmarshal(data, &guide); err == nil {
			return guide, nil
		}
		// fall through to the database on a decode failure
	}

	guide, err := s.guideRepo.GetBySlug(s.provider.Readonly(ctx), slug)
	if err != nil {
		return model.ProductGuide{}, mapNotFound(err)
	}
	if !guide.IsPublic {
		return model.ProductGuide{}, ErrGuideNotFound
	}

	if data, err := json.Marshal(guide); err == nil {
		s.cache.Set(cacheKey(slug), data, s.cacheTTL)
	}
	return guide, nil
}
