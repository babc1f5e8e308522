package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domainLoan "coopfin/internal/domain/loan"
	domainMember "coopfin/internal/domain/member"
	domainTxn "coopfin/internal/domain/transaction"
	loanUC "coopfin/internal/usecase/loan"
	memberUC "coopfin/internal/usecase/member"
	reportUC "coopfin/internal/usecase/report"
	settingUC "coopfin/internal/usecase/setting"
	txnUC "coopfin/internal/usecase/transaction"
)

// writeError maps domain/usecase errors onto HTTP responses. Guard failures
// and policy violations are 400s, missing rows 404s, duplicate email 409.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainMember.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrNotFound),
		errors.Is(err, domainMember.ErrNotFound),
		errors.Is(err, domainTxn.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrInvalidTransition),
		errors.Is(err, domainLoan.ErrInvalidLoanState),
		errors.Is(err, domainLoan.ErrInvalidLoanTerms),
		errors.Is(err, loanUC.ErrValidation),
		errors.Is(err, memberUC.ErrValidation),
		errors.Is(err, txnUC.ErrValidation),
		errors.Is(err, settingUC.ErrValidation),
		errors.Is(err, reportUC.ErrUnknownReport):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
