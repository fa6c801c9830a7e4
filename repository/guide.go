package repository

import (
	"context"

	"github.com/seedinglab/seedops/model"
)

// Guide ...
type Guide interface {
	Insert(ctx context.Context, guide model.ProductGuide) (int64, error)
	Update(ctx context.Context, guide model.ProductGuide) error
	Get(ctx context.Context, id int64) (model.ProductGuide, error)
	GetForUpdate(ctx context.Context, id int64) (model.ProductGuide, error)
	GetBySlug(ctx context.Context, slug string) (model.ProductGuide, error)
	List(ctx context.Context) ([]model.ProductGuide, error)
	Delete(ctx context.Context, id int64) error
}

type guideImpl struct {
}

// NewGuide ...
func NewGuide() Guide {
	return &guideImpl{}
}

const guideColumns = `
id, brand, product_name, title, body,
hashtags, mentions, dos, donts, key_points,
is_public, public_slug, created_at, updated_at
`

// Insert ...
func (r *guideImpl) Insert(ctx context.Context, guide model.ProductGuide) (int64, error) {
	query := `
INSERT INTO product_guide (
	brand, product_name, title, body,
	hashtags, mentions, dos, donts, key_points,
	is_public, public_slug
) VALUES (
	:brand, :product_name, :title, :body,
	:hashtags, :mentions, :dos, :donts, :key_points,
	:is_public, :public_slug
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, guide)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update ...
func (r *guideImpl) Update(ctx context.Context, guide model.ProductGuide) error {
	query := `
UPDATE product_guide SET
	brand = :brand,
	product_name = :product_name,
	title = :title,
	body = :body,
	hashtags = :hashtags,
	mentions = :mentions,
	dos = :dos,
	donts = :donts,
	key_points = :key_points,
	is_public = :is_public,
	public_slug = :public_slug
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, guide)
	return err
}

// Get ...
func (r *guideImpl) Get(ctx context.Context, id int64) (model.ProductGuide, error) {
	query := `SELECT ` + guideColumns + ` FROM product_guide WHERE id = ?`
	var result model.ProductGuide
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// GetForUpdate ...
func (r *guideImpl) GetForUpdate(ctx context.Context, id int64) (model.ProductGuide, error) {
	query := `SELECT ` + guideColumns + ` FROM product_guide WHERE id = ? FOR UPDATE`
	var result model.ProductGuide
	err := GetTx(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// GetBySlug ...
func (r *guideImpl) GetBySlug(ctx context.Context, slug string) (model.ProductGuide, error) {
	query := `SELECT ` + guideColumns + ` FROM product_guide WHERE public_slug = ?`
	var result model.ProductGuide
	err := GetReadonly(ctx).GetContext(ctx, &result, query, slug)
	return result, err
}

// List ...
func (r *guideImpl) List(ctx context.Context) ([]model.ProductGuide, error) {
	query := `SELECT ` + guideColumns + ` FROM product_guide ORDER BY id DESC`
	var result []model.ProductGuide
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// Delete ...
func (r *guideImpl) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM product_guide WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, id)
	return err
}
