package seed

var schemaDDL = []string{
	"CREATE TABLE IF NOT EXISTS `categories` (" +
		"`id` BIGINT NOT NULL AUTO_INCREMENT," +
		"`name` VARCHAR(100) NOT NULL," +
		"`slug` VARCHAR(100) NOT NULL UNIQUE," +
		"`description` TEXT," +
		"`created_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`id`)" +
		")",
	"CREATE TABLE IF NOT EXISTS `products` (" +
		"`id` BIGINT NOT NULL AUTO_INCREMENT," +
		"`name` VARCHAR(200) NOT NULL," +
		"`slug` VARCHAR(200) NOT NULL UNIQUE," +
		"`description` TEXT," +
		"`category_id` BIGINT NOT NULL," +
		"`price` DECIMAL(10,2) NOT NULL," +
		"`discount_percent` INT NOT NULL DEFAULT 0," +
		"`stock_quantity` INT NOT NULL DEFAULT 0," +
		"`sku` VARCHAR(50) NOT NULL UNIQUE," +
		"`is_featured` BOOLEAN NOT NULL DEFAULT FALSE," +
		"`is_active` BOOLEAN NOT NULL DEFAULT TRUE," +
		"`rating` DECIMAL(3,1) NOT NULL DEFAULT 0," +
		"`review_count` INT NOT NULL DEFAULT 0," +
		"`created_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP," +
		"`updated_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP," +
		"`published_date` DATE NULL," +
		"PRIMARY KEY (`id`)," +
		"KEY `idx_products_category` (`category_id`)," +
		"KEY `idx_products_price` (`price`)," +
		"CONSTRAINT `fk_products_category` FOREIGN KEY (`category_id`) REFERENCES `categories` (`id`)" +
		")",
	"CREATE TABLE IF NOT EXISTS `reviews` (" +
		"`id` BIGINT NOT NULL AUTO_INCREMENT," +
		"`product_id` BIGINT NOT NULL," +
		"`user` VARCHAR(100) NOT NULL," +
		"`rating` INT NOT NULL," +
		"`title` VARCHAR(200)," +
		"`comment` TEXT," +
		"`is_verified_purchase` BOOLEAN NOT NULL DEFAULT FALSE," +
		"`helpful_count` INT NOT NULL DEFAULT 0," +
		"`created_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP," +
		"PRIMARY KEY (`id`)," +
		"KEY `idx_reviews_product` (`product_id`)," +
		"CONSTRAINT `fk_reviews_product` FOREIGN KEY (`product_id`) REFERENCES `products` (`id`)" +
		")",
}

type categoryRow struct {
	id          int64
	name        string
	slug        string
	description string
}

type productRow struct {
	id            int64
	name          string
	slug          string
	description   string
	categoryID    int64
	price         float64
	stockQuantity int
	sku           string
	isFeatured    bool
	isActive      bool
	rating        float64
	reviewCount   int
}

type reviewRow struct {
	id                 int64
	productID          int64
	user               string
	rating             int
	title              string
	comment            string
	isVerifiedPurchase bool
	helpfulCount       int
}

var sampleCategories = []categoryRow{
	{1, "Electronics", "electronics", "Electronic devices and gadgets"},
	{2, "Books", "books", "Books and literature"},
	{3, "Clothing", "clothing", "Apparel and fashion"},
	{4, "Home & Garden", "home-garden", "Home and garden supplies"},
}

var sampleProducts = []productRow{
	{1, "Laptop Pro", "laptop-pro", "High-performance laptop", 1, 1299.99, 10, "LAPTOP001", true, true, 4.5, 120},
	{2, "Wireless Mouse", "wireless-mouse", "Ergonomic wireless mouse", 1, 49.99, 0, "MOUSE001", false, true, 4.2, 85},
	{3, "USB-C Cable", "usb-c-cable", "2-meter USB-C charging cable", 1, 19.99, 20, "CABLE001", false, true, 4.8, 200},
	{4, "4K Monitor", "4k-monitor", "27-inch 4K ultra HD display", 1, 599.99, 5, "MONITOR001", true, true, 4.7, 95},
	{5, "Mechanical Keyboard", "mech-keyboard", "RGB mechanical gaming keyboard", 1, 149.99, 15, "KEYBOARD001", true, true, 4.9, 340},
	{6, "Python Programming", "python-programming", "Complete guide to Python", 2, 59.99, 30, "BOOK001", true, true, 4.6, 250},
	{7, "GraphQL Guide", "graphql-guide", "Mastering GraphQL APIs", 2, 49.99, 20, "BOOK002", true, true, 4.8, 180},
	{8, "Web Development", "web-development", "Full-stack web development", 2, 79.99, 0, "BOOK003", false, false, 4.3, 150},
	{9, "Database Design", "database-design", "Advanced database design patterns", 2, 89.99, 10, "BOOK004", false, true, 4.7, 95},
	{10, "Cotton T-Shirt", "cotton-tshirt", "100% organic cotton t-shirt", 3, 24.99, 50, "SHIRT001", false, true, 4.4, 200},
	{11, "Jeans", "blue-jeans", "Classic blue denim jeans", 3, 64.99, 35, "JEANS001", false, true, 4.5, 300},
	{12, "Winter Jacket", "winter-jacket", "Waterproof winter jacket", 3, 199.99, 8, "JACKET001", true, true, 4.6, 120},
	{13, "Sneakers", "running-sneakers", "Comfortable running shoes", 3, 129.99, 12, "SHOES001", true, true, 4.7, 280},
	{14, "Coffee Maker", "coffee-maker", "Programmable coffee machine", 4, 99.99, 20, "COFFEE001", true, true, 4.5, 150},
	{15, "Bed Sheets", "bed-sheets", "Egyptian cotton bed sheets", 4, 44.99, 40, "SHEETS001", false, true, 4.8, 320},
	{16, "Desk Lamp", "desk-lamp", "LED desk lamp with USB charging", 4, 39.99, 25, "LAMP001", false, true, 4.3, 110},
	{17, "Plant Pot", "ceramic-pot", "Decorative ceramic plant pot", 4, 34.99, 60, "POT001", false, true, 4.2, 95},
}

var sampleReviews = []reviewRow{
	{1, 1, "john_doe", 5, "Excellent laptop", "Best laptop I have ever used. Highly recommended!", true, 45},
	{2, 1, "jane_smith", 4, "Good but expensive", "Great performance but the price is steep", true, 35},
	{3, 3, "tech_guy", 5, "Perfect cable", "Excellent quality and length", false, 20},
	{4, 5, "gamer_pro", 5, "Gaming perfection", "Best keyboard for gaming, amazing tactile feedback", true, 120},
	{5, 6, "python_dev", 5, "Fantastic resource", "Comprehensive and easy to follow", true, 80},
	{6, 7, "api_expert", 5, "Must read", "The best guide to GraphQL available", true, 65},
	{7, 10, "fashion_icon", 4, "Good quality", "Comfortable and durable t-shirt", false, 30},
	{8, 11, "casual_wear", 5, "Perfect fit", "These jeans are amazing", true, 95},
	{9, 13, "shoe_lover", 5, "Very comfortable", "My feet feel great in these shoes", true, 110},
	{10, 14, "coffee_addict", 4, "Great coffee", "Makes excellent coffee every morning", true, 55},
}
