// Package catalog is the static product directory consumed by the display
// surfaces. Nothing in the process mutates it; accessors hand out copies.
package catalog

import "github.com/cyclegear/storefront/internal/models"

type Catalog struct {
	products   []models.Product
	categories []models.Category
	byID       map[int]int
}

func New() *Catalog {
	return NewWith(seedProducts, seedCategories)
}

func NewWith(products []models.Product, categories []models.Category) *Catalog {
	c := &Catalog{
		products:   make([]models.Product, len(products)),
		categories: make([]models.Category, len(categories)),
		byID:       make(map[int]int, len(products)),
	}
	copy(c.products, products)
	copy(c.categories, categories)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Product(id int) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) ByCategory(categoryID string) []models.Product {
	if categoryID == "" || categoryID == "all" {
		return c.Products()
	}
	var out []models.Product
	for _, p := range c.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Featured returns the first n products, the home page picks.
func (c *Catalog) Featured(n int) []models.Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	out := make([]models.Product, n)
	copy(out, c.products[:n])
	return out
}

// TopCategories skips the leading "all products" pseudo-category and
// returns up to n real ones for the shop-by-category section.
func (c *Catalog) TopCategories(n int) []models.Category {
	if len(c.categories) == 0 {
		return nil
	}
	rest := c.categories[1:]
	if n > len(rest) {
		n = len(rest)
	}
	out := make([]models.Category, n)
	copy(out, rest[:n])
	return out
}
