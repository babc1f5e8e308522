package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coopfin/internal/usecase/setting"
)

type SettingHandler struct{ uc *setting.Usecase }

func NewSettingHandler(uc *setting.Usecase) *SettingHandler { return &SettingHandler{uc: uc} }

func (h *SettingHandler) Get(c echo.Context) error {
	m, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *SettingHandler) Update(c echo.Context) error {
	var body map[string]string
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	m, err := h.uc.Update(c.Request().Context(), body)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}
