package catalog

import "greenleaf/internal/domain"

// Seed catalog. Loaded once at process start, never mutated. Flower carries
// per-size price options; everything else sells at its base price.
var products = []domain.Product{
	{
		ID: 1, Name: "OG Kush", Category: "Flower", Price: 35,
		Image: "/images/products/og-kush.jpg", THCContent: 24, Strain: "Indica",
		PriceOptions: []domain.PriceOption{
			{Option: "1/4oz", Price: 35},
			{Option: "1/2oz", Price: 65},
			{Option: "1oz", Price: 100},
		},
		Effects: []string{"Relaxed", "Sleepy", "Happy"},
		Flavors: []string{"Earthy", "Pine"},
	},
	{
		ID: 2, Name: "Blue Dream", Category: "Flower", Price: 35,
		Image: "/images/products/blue-dream.jpg", THCContent: 22, Strain: "Hybrid",
		PriceOptions: []domain.PriceOption{
			{Option: "1/4oz", Price: 35},
			{Option: "1/2oz", Price: 65},
			{Option: "1oz", Price: 100},
		},
		Effects: []string{"Uplifted", "Creative", "Happy"},
		Flavors: []string{"Berry", "Sweet"},
	},
	{
		ID: 3, Name: "Sour Diesel", Category: "Flower", Price: 40,
		Image: "/images/products/sour-diesel.jpg", THCContent: 26, Strain: "Sativa",
		PriceOptions: []domain.PriceOption{
			{Option: "1/4oz", Price: 40},
			{Option: "1/2oz", Price: 70},
			{Option: "1oz", Price: 110},
		},
		Effects: []string{"Energetic", "Focused", "Uplifted"},
		Flavors: []string{"Diesel", "Citrus"},
	},
	{
		ID: 4, Name: "Wedding Cake", Category: "Flower", Price: 40,
		Image: "/images/products/wedding-cake.jpg", THCContent: 25, Strain: "Hybrid",
		PriceOptions: []domain.PriceOption{
			{Option: "1/4oz", Price: 40},
			{Option: "1/2oz", Price: 70},
			{Option: "1oz", Price: 110},
		},
		Effects: []string{"Relaxed", "Euphoric"},
		Flavors: []string{"Vanilla", "Sweet"},
		IsNew:   true,
	},
	{
		ID: 5, Name: "Gelato", Category: "Flower", Price: 35,
		Image: "/images/products/gelato.jpg", THCContent: 23, Strain: "Hybrid",
		PriceOptions: []domain.PriceOption{
			{Option: "1/4oz", Price: 35},
			{Option: "1/2oz", Price: 65},
			{Option: "1oz", Price: 100},
		},
		Effects: []string{"Relaxed", "Happy", "Euphoric"},
		Flavors: []string{"Dessert", "Citrus"},
	},

	{
		ID: 6, Name: "Cosmic Gummies 500mg", Category: "Edibles", Price: 25,
		Image: "/images/products/cosmic-gummies.jpg", THCContent: 500,
		Effects: []string{"Relaxed", "Happy", "Uplifted"},
		Flavors: []string{"Watermelon", "Grape"},
	},
	{
		ID: 7, Name: "Midnight Brownie Bites", Category: "Edibles", Price: 25,
		Image: "/images/products/brownie-bites.jpg", THCContent: 400,
		Effects: []string{"Sleepy", "Relaxed"},
		Flavors: []string{"Chocolate"},
	},
	{
		ID: 8, Name: "Sour Peach Rings 500mg", Category: "Edibles", Price: 25,
		Image: "/images/products/peach-rings.jpg", THCContent: 500,
		Effects: []string{"Happy", "Giggly"},
		Flavors: []string{"Peach", "Sour"},
		IsNew:   true,
	},
	{
		ID: 9, Name: "Dark Chocolate Bar 250mg", Category: "Edibles", Price: 20,
		Image: "/images/products/chocolate-bar.jpg", THCContent: 250,
		Effects: []string{"Relaxed", "Focused"},
		Flavors: []string{"Dark Chocolate"},
	},

	{
		ID: 10, Name: "Northern Lights Cartridge 1g", Category: "Cart", Price: 45,
		Image: "/images/products/northern-lights-cart.jpg", THCContent: 88,
		Strain: "Indica", Weight: "1g",
		Effects: []string{"Relaxed", "Sleepy"},
		Flavors: []string{"Earthy", "Sweet"},
	},
	{
		ID: 11, Name: "Pineapple Express Cartridge 1g", Category: "Cart", Price: 45,
		Image: "/images/products/pineapple-express-cart.jpg", THCContent: 85,
		Strain: "Sativa", Weight: "1g",
		Effects: []string{"Energetic", "Happy"},
		Flavors: []string{"Pineapple", "Tropical"},
	},
	{
		ID: 12, Name: "Strawberry Cough Cartridge 1g", Category: "Cart", Price: 45,
		Image: "/images/products/strawberry-cough-cart.jpg", THCContent: 86,
		Strain: "Sativa", Weight: "1g",
		Effects: []string{"Uplifted", "Creative"},
		Flavors: []string{"Strawberry"},
	},

	{
		ID: 13, Name: "Classic 1g Pre-Roll", Category: "Pre-Rolls", Price: 10,
		Image: "/images/products/classic-preroll.jpg", THCContent: 21,
		Strain: "Hybrid", Weight: "1g",
		Effects: []string{"Relaxed", "Happy"},
		Flavors: []string{"Earthy"},
	},
	{
		ID: 14, Name: "Sativa 1g Pre-Roll", Category: "Pre-Rolls", Price: 10,
		Image: "/images/products/sativa-preroll.jpg", THCContent: 22,
		Strain: "Sativa", Weight: "1g",
		Effects: []string{"Energetic", "Uplifted"},
		Flavors: []string{"Citrus"},
	},
	{
		ID: 15, Name: "Infused 1g Pre-Roll", Category: "Pre-Rolls", Price: 12,
		Image: "/images/products/infused-preroll.jpg", THCContent: 35,
		Strain: "Hybrid", Weight: "1g",
		Effects: []string{"Euphoric", "Relaxed"},
		Flavors: []string{"Sweet", "Earthy"},
		IsNew:   true,
	},

	{
		ID: 16, Name: "Mango Haze Disposable 1g", Category: "Disposable-Cart", Price: 40,
		Image: "/images/products/mango-haze-disposable.jpg", THCContent: 84,
		Strain: "Sativa", Weight: "1g",
		Effects: []string{"Uplifted", "Happy"},
		Flavors: []string{"Mango", "Tropical"},
	},
	{
		ID: 17, Name: "Grape Ape Disposable 1g", Category: "Disposable-Cart", Price: 40,
		Image: "/images/products/grape-ape-disposable.jpg", THCContent: 82,
		Strain: "Indica", Weight: "1g",
		Effects: []string{"Relaxed", "Sleepy"},
		Flavors: []string{"Grape"},
	},
	{
		ID: 18, Name: "Lemon Slushie Disposable 3g", Category: "Disposable-Cart", Price: 55,
		Image: "/images/products/lemon-slushie-disposable.jpg", THCContent: 83,
		Strain: "Sativa", Weight: "3g",
		Effects: []string{"Energetic", "Creative"},
		Flavors: []string{"Lemon", "Sour"},
		IsNew:   true,
	},
	{
		ID: 19, Name: "Purple Punch Disposable 3g", Category: "Disposable-Cart", Price: 55,
		Image: "/images/products/purple-punch-disposable.jpg", THCContent: 85,
		Strain: "Indica", Weight: "3g",
		Effects: []string{"Relaxed", "Sleepy", "Happy"},
		Flavors: []string{"Grape", "Berry"},
	},
}
