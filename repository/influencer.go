package repository

import (
	"context"

	"github.com/seedinglab/seedops/model"
)

// Influencer ...
type Influencer interface {
	Insert(ctx context.Context, inf model.SeedingInfluencer) (int64, error)
	Update(ctx context.Context, inf model.SeedingInfluencer) error
	Get(ctx context.Context, id int64) (model.SeedingInfluencer, error)
	GetForUpdate(ctx context.Context, id int64) (model.SeedingInfluencer, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.SeedingInfluencer, error)
	Delete(ctx context.Context, id int64) error
	DeleteByProject(ctx context.Context, projectID int64) error
}

type influencerImpl struct {
}

// NewInfluencer ...
func NewInfluencer() Influencer {
	return &influencerImpl{}
}

const influencerColumns = `
id, project_id, account_id, account_name, platform,
follower_count, following_count, email, phone,
seeding_type, content_type, fee, status,
listed_at, contacted_at, accepted_at, rejected_at, rejection_reason,
guide_sent_at, posted_at, completed_at, expected_upload_at,
shipping_recipient_name, shipping_phone, shipping_address, shipping_postal_code,
shipping_quantity, shipping_carrier, shipping_tracking_number,
shipping_shipped_at, shipping_delivered_at,
perf_views, perf_likes, perf_comments, perf_saves, perf_shares,
perf_story_views, perf_link_clicks, perf_measured_at,
notes, product_name, product_price, created_at, updated_at
`

// Insert ...
func (r *influencerImpl) Insert(ctx context.Context, inf model.SeedingInfluencer) (int64, error) {
	query := `
INSERT INTO seeding_influencer (
	project_id, account_id, account_name, platform,
	follower_count, following_count, email, phone,
	seeding_type, content_type, fee, status,
	listed_at, contacted_at, accepted_at, rejected_at, rejection_reason,
	guide_sent_at, posted_at, completed_at, expected_upload_at,
	shipping_recipient_name, shipping_phone, shipping_address, shipping_postal_code,
	shipping_quantity, shipping_carrier, shipping_tracking_number,
	shipping_shipped_at, shipping_delivered_at,
	perf_views, perf_likes, perf_comments, perf_saves, perf_shares,
	perf_story_views, perf_link_clicks, perf_measured_at,
	notes, product_name, product_price
) VALUES (
	:project_id, :account_id, :account_name, :platform,
	:follower_count, :following_count, :email, :phone,
	:seeding_type, :content_type, :fee, :status,
	:listed_at, :contacted_at, :accepted_at, :rejected_at, :rejection_reason,
	:guide_sent_at, :posted_at, :completed_at, :expected_upload_at,
	:shipping_recipient_name, :shipping_phone, :shipping_address, :shipping_postal_code,
	:shipping_quantity, :shipping_carrier, :shipping_tracking_number,
	:shipping_shipped_at, :shipping_delivered_at,
	:perf_views, :perf_likes, :perf_comments, :perf_saves, :perf_shares,
	:perf_story_views, :perf_link_clicks, :perf_measured_at,
	:notes, :product_name, :product_price
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, inf)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update writes every mutable column. Partial updates are composed by the
// service layer on a freshly loaded row inside the same transaction.
func (r *influencerImpl) Update(ctx context.Context, inf model.SeedingInfluencer) error {
	query := `
UPDATE seeding_influencer SET
	account_id = :account_id,
	account_name = :account_name,
	platform = :platform,
	follower_count = :follower_count,
	following_count = :following_count,
	email = :email,
	phone = :phone,

	seeding_type = :seeding_type,
	content_type = :content_type,
	fee = :fee,
	status = :status,

	listed_at = :listed_at,
	contacted_at = :contacted_at,
	accepted_at = :accepted_at,
	rejected_at = :rejected_at,
	rejection_reason = :rejection_reason,
	guide_sent_at = :guide_sent_at,
	posted_at = :posted_at,
	completed_at = :completed_at,
	expected_upload_at = :expected_upload_at,

	shipping_recipient_name = :shipping_recipient_name,
	shipping_phone = :shipping_phone,
	shipping_address = :shipping_address,
	shipping_postal_code = :shipping_postal_code,
	shipping_quantity = :shipping_quantity,
	shipping_carrier = :shipping_carrier,
	shipping_tracking_number = :shipping_tracking_number,
	shipping_shipped_at = :shipping_shipped_at,
	shipping_delivered_at = :shipping_delivered_at,

	perf_views = :perf_views,
	perf_likes = :perf_likes,
	perf_comments = :perf_comments,
	perf_saves = :perf_saves,
	perf_shares = :perf_shares,
	perf_story_views = :perf_story_views,
	perf_link_clicks = :perf_link_clicks,
	perf_measured_at = :perf_measured_at,

	notes = :notes,
	product_name = :product_name,
	product_price = :product_price
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, inf)
	return err
}

// Get ...
func (r *influencerImpl) Get(ctx context.Context, id int64) (model.SeedingInfluencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM seeding_influencer WHERE id = ?`
	var result model.SeedingInfluencer
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// GetForUpdate ...
func (r *influencerImpl) GetForUpdate(ctx context.Context, id int64) (model.SeedingInfluencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM seeding_influencer WHERE id = ? FOR UPDATE`
	var result model.SeedingInfluencer
	err := GetTx(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// ListByProject ...
func (r *influencerImpl) ListByProject(ctx context.Context, projectID int64) ([]model.SeedingInfluencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM seeding_influencer WHERE project_id = ? ORDER BY id`
	var result []model.SeedingInfluencer
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, projectID)
	return result, err
}

// Delete ...
func (r *influencerImpl) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM seeding_influencer WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, id)
	return err
}

// DeleteByProject ...
func (r *influencerImpl) DeleteByProject(ctx context.Context, projectID int64) error {
	query := `DELETE FROM seeding_influencer WHERE project_id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, projectID)
	return err
}
