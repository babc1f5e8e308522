package setting

import (
	"context"
	"errors"
	"testing"

	domainSetting "coopfin/internal/domain/setting"
	"coopfin/internal/domain/uow"
	"coopfin/internal/testutil/settingmock"
	"coopfin/internal/testutil/uowmock"
)

func newUsecase() (*Usecase, *settingmock.Repo, map[string]string) {
	store := map[string]string{}
	repo := &settingmock.Repo{
		ListFn: func(ctx context.Context) ([]domainSetting.Setting, error) {
			out := make([]domainSetting.Setting, 0, len(store))
			for k, v := range store {
				out = append(out, domainSetting.Setting{Key: k, Value: v})
			}
			return out, nil
		},
		UpsertFn: func(ctx context.Context, key, value string) error {
			store[key] = value
			return nil
		},
	}
	u := NewUsecase(repo, uowmock.Passthrough(uow.Repos{Settings: repo}))
	return u, repo, store
}

func TestGet_DefaultsWhenEmpty(t *testing.T) {
	u, _, _ := newUsecase()
	got, err := u.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got["defaultInterestRate"] != "12" || got["maxTermMonths"] != "36" {
		t.Errorf("resolved = %v, want hardcoded defaults", got)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the merged map", func(t *testing.T) {
		u, _, store := newUsecase()
		got, err := u.Update(ctx, map[string]string{
			"maxLoanAmount":       "250000",
			"defaultInterestRate": "9.5",
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if store["maxLoanAmount"] != "250000" {
			t.Errorf("stored maxLoanAmount = %q", store["maxLoanAmount"])
		}
		if got["maxLoanAmount"] != "250000" || got["defaultInterestRate"] != "9.5" {
			t.Errorf("resolved = %v", got)
		}
		if got["minLoanAmount"] != "1000" {
			t.Errorf("untouched key = %q, want default 1000", got["minLoanAmount"])
		}
	})

	t.Run("rejects unknown keys before writing", func(t *testing.T) {
		u, _, store := newUsecase()
		_, err := u.Update(ctx, map[string]string{
			"maxLoanAmount": "250000",
			"gracePeriod":   "5",
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
		if len(store) != 0 {
			t.Errorf("store = %v, want nothing written on rejected batch", store)
		}
	})

	t.Run("rejects non-numeric and negative values", func(t *testing.T) {
		u, _, _ := newUsecase()
		for _, v := range []string{"plenty", "-1"} {
			if _, err := u.Update(ctx, map[string]string{"maxTermMonths": v}); !errors.Is(err, ErrValidation) {
				t.Errorf("value %q: err = %v, want ErrValidation", v, err)
			}
		}
	})
}
