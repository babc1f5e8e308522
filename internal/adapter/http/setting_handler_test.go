package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	domainSetting "coopfin/internal/domain/setting"
	"coopfin/internal/domain/uow"
	"coopfin/internal/testutil/settingmock"
	"coopfin/internal/testutil/uowmock"
	uc "coopfin/internal/usecase/setting"
)

func newSettingHandler(settings *settingmock.Repo) *SettingHandler {
	repos := uow.Repos{Settings: settings}
	return NewSettingHandler(uc.NewUsecase(settings, uowmock.Passthrough(repos)))
}

func TestGetSettings_Defaults(t *testing.T) {
	e := newEchoWithValidator()
	h := newSettingHandler(&settingmock.Repo{})

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got[domainSetting.KeyDefaultInterestRate] != "12" {
		t.Fatalf("defaultInterestRate = %q, want 12", got[domainSetting.KeyDefaultInterestRate])
	}
	if len(got) != len(domainSetting.Defaults) {
		t.Fatalf("keys = %d, want %d", len(got), len(domainSetting.Defaults))
	}
}

func TestUpdateSettings_MergesOverrides(t *testing.T) {
	e := newEchoWithValidator()
	stored := map[string]string{}
	settings := &settingmock.Repo{
		UpsertFn: func(ctx context.Context, key, value string) error {
			stored[key] = value
			return nil
		},
		ListFn: func(ctx context.Context) ([]domainSetting.Setting, error) {
			out := make([]domainSetting.Setting, 0, len(stored))
			for k, v := range stored {
				out = append(out, domainSetting.Setting{Key: k, Value: v})
			}
			return out, nil
		},
	}
	h := newSettingHandler(settings)

	reqBody := map[string]string{domainSetting.KeyMaxLoanAmount: "250000"}
	req := httptest.NewRequest(http.MethodPut, "/settings", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got[domainSetting.KeyMaxLoanAmount] != "250000" {
		t.Fatalf("maxLoanAmount = %q, want override", got[domainSetting.KeyMaxLoanAmount])
	}
	if got[domainSetting.KeyMinLoanAmount] != "1000" {
		t.Fatalf("minLoanAmount = %q, want default", got[domainSetting.KeyMinLoanAmount])
	}
}

func TestUpdateSettings_RejectsBadInput(t *testing.T) {
	e := newEchoWithValidator()

	cases := []struct {
		name string
		body map[string]string
	}{
		{name: "unknown key", body: map[string]string{"gracePeriodDays": "5"}},
		{name: "non-numeric value", body: map[string]string{domainSetting.KeyMaxLoanAmount: "lots"}},
		{name: "negative value", body: map[string]string{domainSetting.KeyMinTermMonths: "-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upserts := 0
			h := newSettingHandler(&settingmock.Repo{
				UpsertFn: func(ctx context.Context, key, value string) error {
					upserts++
					return nil
				},
			})

			req := httptest.NewRequest(http.MethodPut, "/settings", mustJSON(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.Update(c); err != nil {
				t.Fatalf("Update error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
			}
			if upserts != 0 {
				t.Fatalf("upserts = %d, want 0", upserts)
			}
		})
	}
}
