package seeding

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SeedingType ...
type SeedingType string

const (
	// SeedingTypeFree ...
	SeedingTypeFree SeedingType = "free"

	// SeedingTypePaid ...
	SeedingTypePaid SeedingType = "paid"
)

// ContentType ...
type ContentType string

const (
	// ContentTypeStory ...
	ContentTypeStory ContentType = "story"

	// ContentTypeReels ...
	ContentTypeReels ContentType = "reels"

	// ContentTypeFeed ...
	ContentTypeFeed ContentType = "feed"

	// ContentTypeBoth ...
	ContentTypeBoth ContentType = "both"
)

// ErrFeeRequired ...
var ErrFeeRequired = errors.New("seeding: paid seeding requires a fee greater than zero")

// ValidateCommercialTerms checks that a paid seeding carries a positive fee.
// Exposed as a pure predicate so forms and import paths share it.
func ValidateCommercialTerms(seedingType SeedingType, fee decimal.Decimal) error {
	if seedingType == SeedingTypePaid && !fee.IsPositive() {
		return ErrFeeRequired
	}
	return nil
}

// NormalizeAccountID trims whitespace, strips a single leading @ and
// lowercases, producing the canonical form used for matching.
func NormalizeAccountID(accountID string) string {
	s := strings.TrimSpace(accountID)
	s = strings.TrimPrefix(s, "@")
	return strings.ToLower(s)
}

// ParseCount coerces free-form numeric input ("1,234", "12.5k pasted junk",
// "없음") by keeping only digits. Input with no digits coerces to zero.
func ParseCount(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
