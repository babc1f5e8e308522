package setting

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	domainSetting "coopfin/internal/domain/setting"
	"coopfin/internal/domain/uow"
)

var ErrValidation = errors.New("validation failed")

type Usecase struct {
	settings domainSetting.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(settings domainSetting.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{settings: settings, uow: tx}
}

// Get returns the complete policy map: defaults overlaid with persisted rows.
func (u *Usecase) Get(ctx context.Context) (map[string]string, error) {
	rows, err := u.settings.List(ctx)
	if err != nil {
		return nil, err
	}
	return domainSetting.Resolve(rows), nil
}

// Update upserts the supplied keys atomically. Only known policy keys are
// accepted and every value must parse as a non-negative number.
func (u *Usecase) Update(ctx context.Context, values map[string]string) (map[string]string, error) {
	for k, v := range values {
		if _, ok := domainSetting.Defaults[k]; !ok {
			return nil, fmt.Errorf("%w: %s: %s", ErrValidation, domainSetting.ErrInvalidKey, k)
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid value for %s", ErrValidation, k)
		}
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for k, v := range values {
			if err := r.Settings.Upsert(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.Get(ctx)
}
