package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

type newsRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (r *newsRequest) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	r.Category = strings.TrimSpace(r.Category)
	if r.Title == "" || r.Content == "" {
		return "title and content are required"
	}
	return ""
}

// CreateNews publishes an article.
func (h *AdminHandler) CreateNews(c echo.Context) error {
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	now := time.Now().UTC()
	n := model.News{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Store.News.Create(c.Request().Context(), &n); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, n)
}

// UpdateNews rewrites an article in place.
func (h *AdminHandler) UpdateNews(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid news id"})
	}
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	err := h.Store.News.Update(c.Request().Context(), id, req.Title, req.Content, req.Category, time.Now().UTC())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": id})
}

// DeleteNews removes an article.
func (h *AdminHandler) DeleteNews(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid news id"})
	}
	if err := h.Store.News.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": id})
}
