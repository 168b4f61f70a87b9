package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/cyclegear/storefront/internal/handlers"
)

type Deps struct {
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
	AuthHandler    *handlers.AuthHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.GET("/home", d.ProductHandler.Home)
	v1.GET("/categories", d.ProductHandler.GetCategories)
	v1.GET("/search", d.SearchHandler.Search)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/signup", d.AuthHandler.Signup)
	v1.POST("/logout", d.AuthHandler.Logout)
	v1.GET("/session", d.AuthHandler.Session)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.GET("/summary", d.CartHandler.GetSummary)
	cart.PATCH("/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)
}
