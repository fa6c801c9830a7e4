package csvio

import (
	"database/sql"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/seeding"
)

// utf8BOM keeps Excel reading the Korean headers correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const dateLayout = "2006-01-02"

var influencerHeader = []string{
	"등록일", "계정", "팔로워", "팔로잉", "이메일",
	"DM발송", "응답", "수락일", "제품명", "제품가격",
	"발송", "업로드예정일", "비고",
}

// flag renders a derived boolean the way the dashboard exports it.
func flag(b bool) string {
	if b {
		return "O"
	}
	return ""
}

func nullDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(dateLayout)
}

// WriteInfluencers writes the fixed influencer export: UTF-8 with BOM,
// comma-delimited, derived flags as the literal O / empty string. Quoting
// and escaping of commas, quotes and newlines is left to encoding/csv.
func WriteInfluencers(w io.Writer, records []model.SeedingInfluencer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(influencerHeader); err != nil {
		return err
	}

	for _, rec := range records {
		price := ""
		if rec.ProductPrice.Valid {
			price = rec.ProductPrice.Decimal.String()
		}

		row := []string{
			nullDate(rec.ListedAt),
			"@" + rec.AccountID,
			strconv.FormatInt(rec.FollowerCount, 10),
			strconv.FormatInt(rec.FollowingCount, 10),
			rec.Email,
			flag(seeding.DMSent(rec.Status)),
			flag(seeding.ResponseReceived(rec.Status)),
			nullDate(rec.AcceptedAt),
			rec.ProductName,
			price,
			flag(seeding.IsShipped(rec.Status)),
			nullDate(rec.ExpectedUploadAt),
			rec.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
