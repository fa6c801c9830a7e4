package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seedinglab/seedops/seeding"
)

// Platform ...
type Platform string

const (
	// PlatformInstagram ...
	PlatformInstagram Platform = "instagram"

	// PlatformYoutube ...
	PlatformYoutube Platform = "youtube"

	// PlatformTiktok ...
	PlatformTiktok Platform = "tiktok"
)

// SeedingInfluencer is one outreach target within one project.
//
// Stage timestamps are append-only: each is stamped once when the matching
// status transition happens and never cleared, so presence/absence is the
// transition history. ProductName/ProductPrice are denormalized at
// assignment time and intentionally go stale if the product changes later.
type SeedingInfluencer struct {
	ID        int64 `db:"id" json:"id"`
	ProjectID int64 `db:"project_id" json:"project_id"`

	AccountID      string   `db:"account_id" json:"account_id"`
	AccountName    string   `db:"account_name" json:"account_name"`
	Platform       Platform `db:"platform" json:"platform"`
	FollowerCount  int64    `db:"follower_count" json:"follower_count"`
	FollowingCount int64    `db:"following_count" json:"following_count"`
	Email          string   `db:"email" json:"email"`
	Phone          string   `db:"phone" json:"phone"`

	SeedingType seeding.SeedingType `db:"seeding_type" json:"seeding_type"`
	ContentType seeding.ContentType `db:"content_type" json:"content_type"`
	Fee         decimal.Decimal     `db:"fee" json:"fee"`

	Status seeding.Stage `db:"status" json:"status"`

	ListedAt        sql.NullTime   `db:"listed_at" json:"listed_at"`
	ContactedAt     sql.NullTime   `db:"contacted_at" json:"contacted_at"`
	AcceptedAt      sql.NullTime   `db:"accepted_at" json:"accepted_at"`
	RejectedAt      sql.NullTime   `db:"rejected_at" json:"rejected_at"`
	RejectionReason sql.NullString `db:"rejection_reason" json:"rejection_reason"`
	GuideSentAt     sql.NullTime   `db:"guide_sent_at" json:"guide_sent_at"`
	PostedAt        sql.NullTime   `db:"posted_at" json:"posted_at"`
	CompletedAt     sql.NullTime   `db:"completed_at" json:"completed_at"`

	ExpectedUploadAt sql.NullTime `db:"expected_upload_at" json:"expected_upload_at"`

	// embedded so sqlx flattens the prefixed columns
	ShippingInfo
	SeedingPerformance

	Notes        string              `db:"notes" json:"notes"`
	ProductName  string              `db:"product_name" json:"product_name"`
	ProductPrice decimal.NullDecimal `db:"product_price" json:"product_price"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ShippingInfo ...
type ShippingInfo struct {
	RecipientName  string       `db:"shipping_recipient_name" json:"shipping_recipient_name"`
	Phone          string       `db:"shipping_phone" json:"shipping_phone"`
	Address        string       `db:"shipping_address" json:"shipping_address"`
	PostalCode     string       `db:"shipping_postal_code" json:"shipping_postal_code"`
	Quantity       int64        `db:"shipping_quantity" json:"shipping_quantity"`
	Carrier        string       `db:"shipping_carrier" json:"shipping_carrier"`
	TrackingNumber string       `db:"shipping_tracking_number" json:"shipping_tracking_number"`
	ShippedAt      sql.NullTime `db:"shipping_shipped_at" json:"shipping_shipped_at"`
	DeliveredAt    sql.NullTime `db:"shipping_delivered_at" json:"shipping_delivered_at"`
}

// SeedingPerformance ...
type SeedingPerformance struct {
	Views      int64        `db:"perf_views" json:"perf_views"`
	Likes      int64        `db:"perf_likes" json:"perf_likes"`
	Comments   int64        `db:"perf_comments" json:"perf_comments"`
	Saves      int64        `db:"perf_saves" json:"perf_saves"`
	Shares     int64        `db:"perf_shares" json:"perf_shares"`
	StoryViews int64        `db:"perf_story_views" json:"perf_story_views"`
	LinkClicks int64        `db:"perf_link_clicks" json:"perf_link_clicks"`
	MeasuredAt sql.NullTime `db:"perf_measured_at" json:"perf_measured_at"`
}

// FunnelRecord maps the row into the pure funnel view.
func (inf SeedingInfluencer) FunnelRecord() seeding.Record {
	rec := seeding.Record{Status: inf.Status}
	if inf.AcceptedAt.Valid {
		t := inf.AcceptedAt.Time
		rec.AcceptedAt = &t
	}
	if inf.CompletedAt.Valid {
		t := inf.CompletedAt.Time
		rec.CompletedAt = &t
	}
	return rec
}

// StageTimestamp returns a pointer to the timestamp column of a stage, used
// by the set-once stamping on status transitions.
func (inf *SeedingInfluencer) StageTimestamp(stage seeding.Stage) *sql.NullTime {
	switch stage {
	case seeding.StageListed:
		return &inf.ListedAt
	case seeding.StageContacted:
		return &inf.ContactedAt
	case seeding.StageAccepted:
		return &inf.AcceptedAt
	case seeding.StageRejected:
		return &inf.RejectedAt
	case seeding.StageShipped:
		return &inf.ShippedAt
	case seeding.StageGuideSent:
		return &inf.GuideSentAt
	case seeding.StagePosted:
		return &inf.PostedAt
	case seeding.StageCompleted:
		return &inf.CompletedAt
	}
	return nil
}
