package repository

import (
	"context"

	"github.com/seedinglab/seedops/model"
)

// Project ...
type Project interface {
	Insert(ctx context.Context, project model.SeedingProject) (int64, error)
	Update(ctx context.Context, project model.SeedingProject) error
	Get(ctx context.Context, id int64) (model.SeedingProject, error)
	GetForUpdate(ctx context.Context, id int64) (model.SeedingProject, error)
	List(ctx context.Context) ([]model.SeedingProject, error)
	Delete(ctx context.Context, id int64) error
}

type projectImpl struct {
}

// NewProject ...
func NewProject() Project {
	return &projectImpl{}
}

const projectColumns = `
id, name, brand, product_id, product_name, start_date, end_date,
target_count, cost_price, selling_price, status, assignee_id,
created_at, updated_at
`

// Insert ...
func (r *projectImpl) Insert(ctx context.Context, project model.SeedingProject) (int64, error) {
	query := `
INSERT INTO seeding_project (
	name, brand, product_id, product_name, start_date, end_date,
	target_count, cost_price, selling_price, status, assignee_id
) VALUES (
	:name, :brand, :product_id, :product_name, :start_date, :end_date,
	:target_count, :cost_price, :selling_price, :status, :assignee_id
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, project)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update ...
func (r *projectImpl) Update(ctx context.Context, project model.SeedingProject) error {
	query := `
UPDATE seeding_project SET
	name = :name,
	brand = :brand,
	product_id = :product_id,
	product_name = :product_name,
	start_date = :start_date,
	end_date = :end_date,
	target_count = :target_count,
	cost_price = :cost_price,
	selling_price = :selling_price,
	status = :status,
	assignee_id = :assignee_id
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, project)
	return err
}

// Get ...
func (r *projectImpl) Get(ctx context.Context, id int64) (model.SeedingProject, error) {
	query := `SELECT ` + projectColumns + ` FROM seeding_project WHERE id = ?`
	var result model.SeedingProject
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// GetForUpdate ...
func (r *projectImpl) GetForUpdate(ctx context.Context, id int64) (model.SeedingProject, error) {
	query := `SELECT ` + projectColumns + ` FROM seeding_project WHERE id = ? FOR UPDATE`
	var result model.SeedingProject
	err := GetTx(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// List ...
func (r *projectImpl) List(ctx context.Context) ([]model.SeedingProject, error) {
	query := `SELECT ` + projectColumns + ` FROM seeding_project ORDER BY id DESC`
	var result []model.SeedingProject
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// Delete ...
func (r *projectImpl) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM seeding_project WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, id)
	return err
}
