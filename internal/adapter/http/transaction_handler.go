package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	mw "coopfin/internal/adapter/middleware"
	"coopfin/internal/usecase/transaction"
)

type TransactionHandler struct{ uc *transaction.Usecase }

func NewTransactionHandler(uc *transaction.Usecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

type recordTxnReq struct {
	MemberID    string          `json:"member_id" validate:"required,hex32"`
	Type        string          `json:"type" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	LoanID      *string         `json:"loan_id"`
}

func (h *TransactionHandler) Record(c echo.Context) error {
	var req recordTxnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	txn, err := h.uc.Record(c.Request().Context(), transaction.RecordInput{
		MemberID:    req.MemberID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		LoanID:      req.LoanID,
		ActorID:     mw.ActorID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, txn)
}

// List supports optional from/to query params (RFC3339 or YYYY-MM-DD) for
// the period filter.
func (h *TransactionHandler) List(c echo.Context) error {
	from, err := parsePeriodParam(c.QueryParam("from"), false)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
	}
	to, err := parsePeriodParam(c.QueryParam("to"), true)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
	}

	txns, err := h.uc.List(c.Request().Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, txns)
}

func parsePeriodParam(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
