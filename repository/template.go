package repository

import (
	"context"

	"github.com/seedinglab/seedops/model"
)

// Template ...
type Template interface {
	Insert(ctx context.Context, tmpl model.OutreachTemplate) (int64, error)
	Update(ctx context.Context, tmpl model.OutreachTemplate) error
	Get(ctx context.Context, id int64) (model.OutreachTemplate, error)
	List(ctx context.Context) ([]model.OutreachTemplate, error)
	IncrementUsage(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type templateImpl struct {
}

// NewTemplate ...
func NewTemplate() Template {
	return &templateImpl{}
}

const templateColumns = `
id, name, content, seeding_type, content_type, brand, usage_count,
created_at, updated_at
`

// Insert ...
func (r *templateImpl) Insert(ctx context.Context, tmpl model.OutreachTemplate) (int64, error) {
	query := `
INSERT INTO outreach_template (
	name, content, seeding_type, content_type, brand, usage_count
) VALUES (
	:name, :content, :seeding_type, :content_type, :brand, :usage_count
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, tmpl)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update ...
func (r *templateImpl) Update(ctx context.Context, tmpl model.OutreachTemplate) error {
	query := `
UPDATE outreach_template SET
	name = :name,
	content = :content,
	seeding_type = :seeding_type,
	content_type = :content_type,
	brand = :brand
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, tmpl)
	return err
}

// Get ...
func (r *templateImpl) Get(ctx context.Context, id int64) (model.OutreachTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM outreach_template WHERE id = ?`
	var result model.OutreachTemplate
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// List ...
func (r *templateImpl) List(ctx context.Context) ([]model.OutreachTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM outreach_template ORDER BY usage_count DESC, id`
	var result []model.OutreachTemplate
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// IncrementUsage counts one successful copy action. Monotonic by
// construction: the increment happens in SQL, never from a stale read.
func (r *templateImpl) IncrementUsage(ctx context.Context, id int64) error {
	query := `UPDATE outreach_template SET usage_count = usage_count + 1 WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, id)
	return err
}

// Delete ...
func (r *templateImpl) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM outreach_template WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, id)
	return err
}
