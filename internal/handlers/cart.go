package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cyclegear/storefront/internal/cart"
	"github.com/cyclegear/storefront/internal/catalog"
	"github.com/cyclegear/storefront/internal/logging"
)

type CartHandler struct {
	Cart    *cart.Store
	Catalog *catalog.Catalog
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Cart.Snapshot())
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "invalid body")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	p, ok := h.Catalog.Product(req.ProductID)
	if !ok {
		l.Warn("add_to_cart_failed", "status", 404, "reason", "product not found", "id", req.ProductID)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if !p.InStock {
		l.Warn("add_to_cart_failed", "status", 409, "reason", "out of stock", "id", req.ProductID)
		return echo.NewHTTPError(http.StatusConflict, "product out of stock")
	}

	h.Cart.Add(ctx, p)
	return c.JSON(http.StatusOK, h.Cart.Snapshot())
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("update_quantity_failed", "status", 400, "reason", "invalid id")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_failed", "status", 400, "reason", "invalid body")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	h.Cart.UpdateQuantity(ctx, id, req.Quantity)
	return c.JSON(http.StatusOK, h.Cart.Snapshot())
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("remove_from_cart_failed", "status", 400, "reason", "invalid id")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	h.Cart.Remove(ctx, id)
	return c.JSON(http.StatusOK, h.Cart.Snapshot())
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	h.Cart.Clear(c.Request().Context())
	return c.JSON(http.StatusOK, h.Cart.Snapshot())
}

// GetSummary returns the cart with the checkout quote applied.
func (h *CartHandler) GetSummary(c echo.Context) error {
	snap := h.Cart.Snapshot()
	return c.JSON(http.StatusOK, map[string]any{
		"cart":  snap,
		"quote": cart.QuoteFor(snap.Total),
	})
}
