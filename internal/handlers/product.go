package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cyclegear/storefront/internal/catalog"
	"github.com/cyclegear/storefront/internal/logging"
	"github.com/cyclegear/storefront/internal/util"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	items := h.Catalog.ByCategory(c.QueryParam("category"))
	total := len(items)

	if from > total {
		from = total
	}
	end := from + limit
	if end > total {
		end = total
	}
	pageItems := items[from:end]

	l.Debug("products listed", "total", total, "page", page)
	return c.JSON(http.StatusOK, map[string]any{
		"data": pageItems,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
			"has_prev":    page > 1,
			"has_next":    end < total,
		},
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("get_product_failed", "status", 400, "reason", "invalid id")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, ok := h.Catalog.Product(id)
	if !ok {
		l.Warn("get_product_failed", "status", 404, "reason", "product not found", "id", id)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Categories())
}

// Home serves the marketing page picks: the first four products and the
// shop-by-category tiles.
func (h *ProductHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"featured":   h.Catalog.Featured(4),
		"categories": h.Catalog.TopCategories(4),
	})
}
