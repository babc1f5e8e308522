package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"coopfin/internal/usecase/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Generate(c echo.Context) error {
	f, filename, err := h.uc.Generate(c.Request().Context(), c.Param("type"))
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ReportHandler) Statement(c echo.Context) error {
	f, filename, err := h.uc.Statement(c.Request().Context(), c.Param("member_id"), time.Now().UTC())
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
