package catalog

import "github.com/phenrril/flexlinen/internal/domain"

const (
	imgTrackPants = "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?auto=format&fit=crop&w=800&q=80"
	imgTracksuit  = "https://images.unsplash.com/photo-1556906781-9a412961c28c?auto=format&fit=crop&w=800&q=80"
	imgTraining   = "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?auto=format&fit=crop&w=800&q=80"
)

var products = []domain.Product{
	{
		ID:          "1",
		Name:        "Premium Track Pants",
		Price:       1999,
		Image:       imgTrackPants,
		Category:    "Lowers",
		Rating:      4,
		Description: "Premium quality track pants made with breathable fabric for ultimate comfort during workouts.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Black", "Navy", "Grey"},
		Features:    []string{"Breathable fabric", "Elastic waistband", "Zippered pockets", "Moisture wicking"},
	},
	{
		ID:          "2",
		Name:        "Classic Tracksuit Set",
		Price:       2999,
		Image:       imgTracksuit,
		Category:    "Tracksuits",
		Rating:      5,
		Description: "Complete tracksuit set with matching jacket and pants, perfect for both workouts and casual wear.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Black", "Navy", "Red"},
		Features:    []string{"Matching set", "Breathable material", "Elastic cuffs", "Zippered pockets"},
	},
	{
		ID:          "3",
		Name:        "Performance Shorts",
		Price:       1499,
		Image:       imgTrackPants,
		Category:    "Lowers",
		Rating:      4,
		Description: "Lightweight and comfortable shorts designed for high-performance workouts.",
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"Black", "Navy", "Grey"},
		Features:    []string{"Quick-dry fabric", "Built-in liner", "Elastic waistband", "Zippered pocket"},
	},
	{
		ID:          "4",
		Name:        "Sports Bra",
		Price:       1299,
		Image:       imgTraining,
		Category:    "Accessories",
		Rating:      5,
		Description: "High-support sports bra with moisture-wicking fabric for intense workouts.",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Black", "Navy", "Pink"},
		Features:    []string{"High support", "Moisture wicking", "Adjustable straps", "Breathable fabric"},
	},
	{
		ID:          "5",
		Name:        "Training T-Shirt",
		Price:       999,
		Image:       imgTraining,
		Category:    "Accessories",
		Rating:      4,
		Description: "Comfortable and stylish training t-shirt made with breathable fabric.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Black", "White", "Grey"},
		Features:    []string{"Breathable fabric", "Moisture wicking", "Tagless design", "Relaxed fit"},
	},
	{
		ID:          "6",
		Name:        "Premium Hoodie",
		Price:       2499,
		Image:       imgTracksuit,
		Category:    "Tracksuits",
		Rating:      5,
		Description: "Warm and comfortable hoodie perfect for outdoor workouts or casual wear.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Black", "Grey", "Navy"},
		Features:    []string{"Fleece lining", "Kangaroo pocket", "Adjustable hood", "Ribbed cuffs"},
	},
}

var collections = []domain.Collection{
	{
		ID:          "summer-essentials",
		Name:        "Summer Essentials",
		Description: "Stay cool and stylish with our summer collection featuring breathable fabrics and vibrant designs.",
		Image:       imgTraining,
		Category:    "Seasonal",
		Featured:    true,
		Products:    []string{"1", "3", "5"},
	},
	{
		ID:          "winter-collection",
		Name:        "Winter Collection",
		Description: "Premium winter sportswear designed to keep you warm without compromising on style.",
		Image:       imgTracksuit,
		Category:    "Seasonal",
		Featured:    true,
		Products:    []string{"2", "6"},
	},
	{
		ID:          "active-wear",
		Name:        "Active Wear",
		Description: "High-performance activewear for your most intense workouts.",
		Image:       imgTrackPants,
		Category:    "Sport",
		Featured:    true,
		Products:    []string{"1", "2", "3", "4"},
	},
	{
		ID:          "athleisure",
		Name:        "Athleisure",
		Description: "Comfortable and stylish clothing that transitions seamlessly from workout to hangout.",
		Image:       imgTraining,
		Category:    "Lifestyle",
		Featured:    true,
		Products:    []string{"2", "5", "6"},
	},
	{
		ID:          "performance",
		Name:        "Performance",
		Description: "Engineered for peak performance with advanced moisture-wicking technology.",
		Image:       imgTrackPants,
		Category:    "Sport",
		Featured:    false,
		Products:    []string{"1", "3", "4"},
	},
	{
		ID:          "essentials",
		Name:        "Essentials",
		Description: "Timeless basics that form the foundation of your athletic wardrobe.",
		Image:       imgTracksuit,
		Category:    "Basics",
		Featured:    false,
		Products:    []string{"2", "5", "6"},
	},
}

var categoryPages = []domain.CategoryPage{
	{
		ID:          "tracksuits",
		Name:        "Tracksuits",
		Description: "Premium tracksuits for ultimate comfort and style.",
		Image:       "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?auto=format&fit=crop&w=2000&q=80",
	},
	{
		ID:          "lowers",
		Name:        "Lowers",
		Description: "Comfortable and stylish lower wear for every occasion.",
		Image:       "https://images.unsplash.com/photo-1483985988355-763728e1935b?auto=format&fit=crop&w=2000&q=80",
	},
	{
		ID:          "accessories",
		Name:        "Accessories",
		Description: "Complete your look with our range of accessories.",
		Image:       "https://images.unsplash.com/photo-1483721310020-03333e577078?auto=format&fit=crop&w=2000&q=80",
	},
}

var categories = []string{domain.CategoryAll, "Lowers", "Tracksuits", "Accessories"}

var sortOptions = []domain.SortOption{
	{Name: "Most Popular", Value: string(domain.SortPopular)},
	{Name: "Best Rating", Value: string(domain.SortRating)},
	{Name: "Newest", Value: string(domain.SortNewest)},
	{Name: "Price: Low to High", Value: string(domain.SortPriceAsc)},
	{Name: "Price: High to Low", Value: string(domain.SortPriceDesc)},
}
