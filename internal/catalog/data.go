package catalog

import "github.com/cyclegear/storefront/internal/models"

var seedCategories = []models.Category{
	{ID: "all", Name: "All Products", Icon: "🚴"},
	{ID: "bikes", Name: "Bikes", Icon: "🚵"},
	{ID: "helmets", Name: "Helmets", Icon: "🪖"},
	{ID: "apparel", Name: "Apparel", Icon: "👕"},
	{ID: "accessories", Name: "Accessories", Icon: "🔧"},
	{ID: "components", Name: "Components", Icon: "⚙️"},
}

var seedProducts = []models.Product{
	{
		ID:          1,
		Name:        "Summit Pro Mountain Bike",
		Description: "Full-suspension trail bike with a carbon frame and 29-inch wheels, built for aggressive descents.",
		Price:       2499.99,
		Image:       "/images/summit-pro.jpg",
		Category:    "bikes",
		Brand:       "TrailForge",
		Rating:      4.8,
		InStock:     true,
	},
	{
		ID:          2,
		Name:        "Velocity Road Bike",
		Description: "Lightweight aluminum road bike with an 11-speed groupset for fast weekend rides.",
		Price:       1299.00,
		Image:       "/images/velocity-road.jpg",
		Category:    "bikes",
		Brand:       "SwiftCycle",
		Rating:      4.6,
		InStock:     true,
	},
	{
		ID:          3,
		Name:        "AeroShield Helmet",
		Description: "Aerodynamic road helmet with MIPS protection and 18 cooling vents.",
		Price:       189.99,
		Image:       "/images/aeroshield.jpg",
		Category:    "helmets",
		Brand:       "SafeRide",
		Rating:      4.9,
		InStock:     true,
	},
	{
		ID:          4,
		Name:        "Trail Guard Helmet",
		Description: "Extended-coverage mountain helmet with an adjustable visor.",
		Price:       129.99,
		Image:       "/images/trail-guard.jpg",
		Category:    "helmets",
		Brand:       "SafeRide",
		Rating:      4.5,
		InStock:     false,
	},
	{
		ID:          5,
		Name:        "Pro Team Jersey",
		Description: "Breathable race-fit jersey with three rear pockets and a full-length zipper.",
		Price:       79.99,
		Image:       "/images/pro-jersey.jpg",
		Category:    "apparel",
		Brand:       "PedalWear",
		Rating:      4.4,
		InStock:     true,
	},
	{
		ID:          6,
		Name:        "Endurance Bib Shorts",
		Description: "Padded bib shorts with compressive fabric for all-day comfort.",
		Price:       109.99,
		Image:       "/images/bib-shorts.jpg",
		Category:    "apparel",
		Brand:       "PedalWear",
		Rating:      4.7,
		InStock:     true,
	},
	{
		ID:          7,
		Name:        "Beacon LED Light Set",
		Description: "USB-rechargeable front and rear light set, 400 lumens, six modes.",
		Price:       49.99,
		Image:       "/images/beacon-lights.jpg",
		Category:    "accessories",
		Brand:       "NightRider",
		Rating:      4.3,
		InStock:     true,
	},
	{
		ID:          8,
		Name:        "Guardian U-Lock",
		Description: "Hardened steel U-lock with a double-bolt crossbar and two keys.",
		Price:       64.99,
		Image:       "/images/guardian-lock.jpg",
		Category:    "accessories",
		Brand:       "SecureCycle",
		Rating:      4.6,
		InStock:     true,
	},
	{
		ID:          9,
		Name:        "TurboMax Floor Pump",
		Description: "High-pressure floor pump with a dual-valve head and gauge.",
		Price:       39.99,
		Image:       "/images/turbomax-pump.jpg",
		Category:    "accessories",
		Brand:       "AirFlow",
		Rating:      4.2,
		InStock:     true,
	},
	{
		ID:          10,
		Name:        "Apex Carbon Wheelset",
		Description: "Tubeless-ready carbon wheelset, 45mm depth, for road and gravel.",
		Price:       899.99,
		Image:       "/images/apex-wheels.jpg",
		Category:    "components",
		Brand:       "SwiftCycle",
		Rating:      4.8,
		InStock:     false,
	},
}
