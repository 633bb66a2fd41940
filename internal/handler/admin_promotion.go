package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

type createPromotionRequest struct {
	FlightID     uint64  `json:"flight_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DiscountRate float64 `json:"discount_rate"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

// CreatePromotion attaches a discount window to a flight.
func (h *AdminHandler) CreatePromotion(c echo.Context) error {
	var req createPromotionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.FlightID == 0 || strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "flight_id and title are required"})
	}
	if req.DiscountRate <= 0 || req.DiscountRate >= 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "discount_rate must be between 0 and 1 exclusive"})
	}
	start, okStart := parseDate(req.StartDate)
	end, okEnd := parseDate(req.EndDate)
	if !okStart || !okEnd || !end.After(start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must form a valid window"})
	}

	// The flight must exist before a discount can point at it.
	if _, err := h.Store.Flights.GetByID(c.Request().Context(), req.FlightID); err != nil {
		return respondErr(c, err)
	}

	p := model.Promotion{
		FlightID:     req.FlightID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		DiscountRate: req.DiscountRate,
		StartDate:    start,
		EndDate:      end,
	}
	if err := h.Store.Promotions.Create(c.Request().Context(), &p); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// DeletePromotion removes a promotion.
func (h *AdminHandler) DeletePromotion(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid promotion id"})
	}
	if err := h.Store.Promotions.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": id})
}
