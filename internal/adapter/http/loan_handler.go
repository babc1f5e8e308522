package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	mw "coopfin/internal/adapter/middleware"
	"coopfin/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	MemberID     string           `json:"member_id" validate:"required,hex32"`
	Amount       decimal.Decimal  `json:"amount"`
	InterestRate *decimal.Decimal `json:"interest_rate"`
	TermMonths   int              `json:"term_months" validate:"required,gte=1"`
	Purpose      string           `json:"purpose"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		MemberID:     req.MemberID,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		TermMonths:   req.TermMonths,
		Purpose:      req.Purpose,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type loanActionReq struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// Transition handles PATCH /loans/:loan_id with an approve or reject action.
func (h *LoanHandler) Transition(c echo.Context) error {
	var req loanActionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid action", Details: ToFieldErrors(err)})
	}

	loanID := c.Param("loan_id")
	actorID := mw.ActorID(c)

	var (
		dto *loan.LoanDTO
		err error
	)
	switch req.Action {
	case "approve":
		dto, err = h.uc.Approve(c.Request().Context(), loanID, actorID)
	case "reject":
		dto, err = h.uc.Reject(c.Request().Context(), loanID, actorID)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type paymentReq struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (h *LoanHandler) RecordPayment(c echo.Context) error {
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	txn, err := h.uc.RecordPayment(c.Request().Context(), loan.PaymentInput{
		LoanID:      c.Param("loan_id"),
		Amount:      req.Amount,
		Description: req.Description,
		ActorID:     mw.ActorID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, txn)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
