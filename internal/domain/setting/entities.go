package setting

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("setting not found")
	ErrInvalidKey = errors.New("unknown setting key")
)

const (
	KeyDefaultInterestRate = "defaultInterestRate"
	KeyMaxLoanAmount       = "maxLoanAmount"
	KeyMinLoanAmount       = "minLoanAmount"
	KeyMaxTermMonths       = "maxTermMonths"
	KeyMinTermMonths       = "minTermMonths"
)

// Defaults are the hardcoded policy values used for any key without a
// persisted override.
var Defaults = map[string]string{
	KeyDefaultInterestRate: "12",
	KeyMaxLoanAmount:       "100000",
	KeyMinLoanAmount:       "1000",
	KeyMaxTermMonths:       "36",
	KeyMinTermMonths:       "1",
}

type Setting struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	Key       string         `gorm:"size:64;uniqueIndex:ux_settings_key_active" json:"key"`
	Value     string         `gorm:"size:191" json:"value"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Setting) TableName() string { return "settings" }

// Resolve merges persisted overrides on top of the default table. Unknown
// keys in the override rows are ignored; the result always carries every
// policy key.
func Resolve(overrides []Setting) map[string]string {
	out := make(map[string]string, len(Defaults))
	for k, v := range Defaults {
		out[k] = v
	}
	for _, s := range overrides {
		if _, ok := Defaults[s.Key]; ok {
			out[s.Key] = s.Value
		}
	}
	return out
}

// Policy is the parsed form of the resolved settings, used to bound loan
// applications before the calculator runs.
type Policy struct {
	DefaultInterestRate decimal.Decimal
	MinLoanAmount       decimal.Decimal
	MaxLoanAmount       decimal.Decimal
	MinTermMonths       int
	MaxTermMonths       int
}

// ResolvePolicy parses the merged settings into numeric bounds.
func ResolvePolicy(overrides []Setting) (Policy, error) {
	m := Resolve(overrides)

	rate, err := decimal.NewFromString(m[KeyDefaultInterestRate])
	if err != nil {
		return Policy{}, fmt.Errorf("parse %s: %w", KeyDefaultInterestRate, err)
	}
	minAmt, err := decimal.NewFromString(m[KeyMinLoanAmount])
	if err != nil {
		return Policy{}, fmt.Errorf("parse %s: %w", KeyMinLoanAmount, err)
	}
	maxAmt, err := decimal.NewFromString(m[KeyMaxLoanAmount])
	if err != nil {
		return Policy{}, fmt.Errorf("parse %s: %w", KeyMaxLoanAmount, err)
	}
	minTerm, err := strconv.Atoi(m[KeyMinTermMonths])
	if err != nil {
		return Policy{}, fmt.Errorf("parse %s: %w", KeyMinTermMonths, err)
	}
	maxTerm, err := strconv.Atoi(m[KeyMaxTermMonths])
	if err != nil {
		return Policy{}, fmt.Errorf("parse %s: %w", KeyMaxTermMonths, err)
	}

	return Policy{
		DefaultInterestRate: rate,
		MinLoanAmount:       minAmt,
		MaxLoanAmount:       maxAmt,
		MinTermMonths:       minTerm,
		MaxTermMonths:       maxTerm,
	}, nil
}
