package store

import "mtdstore-backend/internal/models"

// sampleProducts returns the fixed catalog used to seed an empty store
func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Fresh Tomatoes", Price: 40, Quantity: 50,
			Description: "Organic, farm-fresh tomatoes with rich flavor and vibrant color. Perfect for salads and cooking.",
			Image:       "https://images.unsplash.com/photo-1546470427-e212b7d31075?w=400&h=300&fit=crop",
			Seller:      "Farmer Raj", SellerID: "mrisell", Category: "vegetables",
		},
		{
			ID: 2, Name: "Premium Potatoes", Price: 25, Quantity: 100,
			Description: "Fresh potatoes, perfect for various culinary preparations. High quality and long shelf life.",
			Image:       "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400&h=300&fit=crop",
			Seller:      "Farmer Singh", SellerID: "mrisell", Category: "vegetables",
		},
		{
			ID: 3, Name: "Organic Onions", Price: 30, Quantity: 80,
			Description: "Premium quality onions with strong flavor and long shelf life. Organically grown.",
			Image:       "https://images.unsplash.com/photo-1506813257165-9cee8b6e86a5?w=400&h=300&fit=crop",
			Seller:      "Veggie Farms", SellerID: "mrisell", Category: "vegetables",
		},
		{
			ID: 4, Name: "Sweet Carrots", Price: 60, Quantity: 40,
			Description: "Sweet and crunchy carrots, rich in vitamins and nutrients. Fresh from the farm.",
			Image:       "https://images.unsplash.com/photo-1445282768818-728615cc910a?w=400&h=300&fit=crop",
			Seller:      "Green Fields", SellerID: "mrisell", Category: "vegetables",
		},
		{
			ID: 5, Name: "Bell Peppers", Price: 80, Quantity: 30,
			Description: "Colorful bell peppers, great for salads and cooking. Rich in vitamin C.",
			Image:       "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=400&h=300&fit=crop",
			Seller:      "Organic Harvest", SellerID: "mrisell", Category: "vegetables",
		},
		{
			ID: 6, Name: "Fresh Spinach", Price: 35, Quantity: 25,
			Description: "Fresh leafy spinach, packed with iron and vitamins. Perfect for healthy meals.",
			Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400&h=300&fit=crop",
			Seller:      "Leafy Greens", SellerID: "mrisell", Category: "leafy-greens",
		},
		{
			ID: 7, Name: "Cucumbers", Price: 20, Quantity: 60,
			Description: "Crisp and refreshing cucumbers, perfect for salads and summer dishes.",
			Image:       "https://images.unsplash.com/photo-1449300079327-02f967c8f540?w=400&h=300&fit=crop",
			Seller:      "Fresh Farms", SellerID: "mrisell", Category: "vegetables",
		},
		{
			ID: 8, Name: "Sweet Apples", Price: 120, Quantity: 35,
			Description: "Sweet and juicy apples, direct from the orchard. Rich in fiber and antioxidants.",
			Image:       "https://images.unsplash.com/photo-1568702846914-96b305d2aaeb?w=400&h=300&fit=crop",
			Seller:      "Orchard Fresh", SellerID: "mrisell", Category: "fruits",
		},
	}
}
