package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainMember "coopfin/internal/domain/member"
	domainTxn "coopfin/internal/domain/transaction"
	"coopfin/internal/testutil/membermock"
	"coopfin/internal/testutil/txnmock"
	uc "coopfin/internal/usecase/member"
)

func newMemberHandler(members *membermock.Repo, txns *txnmock.Repo) *MemberHandler {
	if txns == nil {
		txns = &txnmock.Repo{}
	}
	return NewMemberHandler(uc.NewUsecase(members, txns))
}

func TestRegisterMember_Success(t *testing.T) {
	e := newEchoWithValidator()
	var created *domainMember.Member
	members := &membermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*domainMember.Member, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, m *domainMember.Member) error {
			created = m
			return nil
		},
	}
	h := newMemberHandler(members, nil)

	reqBody := map[string]any{
		"name":     "Maria Santos",
		"email":    "maria@example.com",
		"password": "s3cretpw",
		"phone":    "0917-555-0101",
	}
	req := httptest.NewRequest(http.MethodPost, "/members", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatal("member not persisted")
	}
	if created.PasswordHash == "s3cretpw" {
		t.Fatal("password stored in the clear")
	}
	var got uc.RegisteredDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.MemberID) != 32 {
		t.Fatalf("member_id = %q, want 32-char id", got.MemberID)
	}
	if got.Email != "maria@example.com" {
		t.Fatalf("email = %q", got.Email)
	}
}

func TestRegisterMember_DuplicateEmail(t *testing.T) {
	e := newEchoWithValidator()
	members := &membermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*domainMember.Member, error) {
			return &domainMember.Member{Email: email}, nil
		},
	}
	h := newMemberHandler(members, nil)

	reqBody := map[string]any{
		"name":     "Maria Santos",
		"email":    "maria@example.com",
		"password": "s3cretpw",
	}
	req := httptest.NewRequest(http.MethodPost, "/members", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterMember_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newMemberHandler(&membermock.Repo{}, nil)

	cases := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{name: "missing name", body: map[string]any{"email": "a@b.co", "password": "s3cretpw"}, field: "Name"},
		{name: "bad email", body: map[string]any{"name": "X", "email": "not-an-email", "password": "s3cretpw"}, field: "Email"},
		{name: "short password", body: map[string]any{"name": "X", "email": "a@b.co", "password": "abc"}, field: "Password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/members", mustJSON(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.Register(c); err != nil {
				t.Fatalf("Register error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var er ErrorResponse
			_ = json.Unmarshal(rec.Body.Bytes(), &er)
			found := false
			for _, d := range er.Details {
				if d.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("no detail for %s: %+v", tc.field, er.Details)
			}
		})
	}
}

func TestGetMember_Profile(t *testing.T) {
	e := newEchoWithValidator()
	memberID := strings.Repeat("b", 32)
	members := &membermock.Repo{
		GetByMemberIDFn: func(ctx context.Context, id string) (*domainMember.Member, error) {
			return &domainMember.Member{
				MemberID: id,
				Name:     "Maria Santos",
				Email:    "maria@example.com",
				Active:   true,
				JoinedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	txns := &txnmock.Repo{
		ListByMemberIDFn: func(ctx context.Context, id string) ([]domainTxn.Transaction, error) {
			return []domainTxn.Transaction{
				{Type: domainTxn.TypeDeposit, Amount: decimal.NewFromInt(1000)},
				{Type: domainTxn.TypeWithdrawal, Amount: decimal.NewFromInt(400)},
			}, nil
		},
	}
	h := newMemberHandler(members, txns)

	req := httptest.NewRequest(http.MethodGet, "/members/"+memberID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/members/:member_id")
	c.SetParamNames("member_id")
	c.SetParamValues(memberID)

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.ProfileDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.SavingsBalance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("savings = %s, want 600", got.SavingsBalance)
	}
	if !got.TotalDeposits.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("deposits = %s, want 1000", got.TotalDeposits)
	}
}

func TestGetMember_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	members := &membermock.Repo{
		GetByMemberIDFn: func(ctx context.Context, id string) (*domainMember.Member, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newMemberHandler(members, nil)

	req := httptest.NewRequest(http.MethodGet, "/members/"+strings.Repeat("e", 32), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/members/:member_id")
	c.SetParamNames("member_id")
	c.SetParamValues(strings.Repeat("e", 32))

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
