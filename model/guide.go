package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList is an ordered list stored as a JSON text column.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("model: unsupported type for StringList")
	}
}

// ProductGuide is the content brief sent to accepted influencers. A public
// guide is addressable by its slug without authentication.
type ProductGuide struct {
	ID          int64  `db:"id" json:"id"`
	Brand       string `db:"brand" json:"brand"`
	ProductName string `db:"product_name" json:"product_name"`
	Title       string `db:"title" json:"title"`
	Body        string `db:"body" json:"body"`

	Hashtags  StringList `db:"hashtags" json:"hashtags"`
	Mentions  StringList `db:"mentions" json:"mentions"`
	Dos       StringList `db:"dos" json:"dos"`
	Donts     StringList `db:"donts" json:"donts"`
	KeyPoints StringList `db:"key_points" json:"key_points"`

	IsPublic   bool   `db:"is_public" json:"is_public"`
	PublicSlug string `db:"public_slug" json:"public_slug"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
