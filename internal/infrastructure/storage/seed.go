package storage

import (
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Datos seed: el catálogo inicial del negocio. Se devuelven cuando una
// colección aún no fue persistida. Cada llamada construye slices nuevos para
// que los consumidores no puedan mutar el seed compartido.

func price(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// SeedUsers son los usuarios demo. No se persisten: el login acepta cualquier
// username y crea el usuario al vuelo si no está en esta lista.
func SeedUsers() []entity.User {
	return []entity.User{
		{ID: "1", Username: "admin", Role: entity.RoleAdmin, Name: "Admin User"},
		{ID: "2", Username: "staff", Role: entity.RoleStaff, Name: "Staff Member"},
		{ID: "3", Username: "accountant", Role: entity.RoleAccountant, Name: "Accountant"},
	}
}

// SeedProducts es el catálogo de variedades de khakhra.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Plain Khakhra", Category: "Regular", Price: price(120), Cost: price(60), Stock: 500, Unit: "pack", LowStockThreshold: 100},
		{ID: "2", Name: "Methi Khakhra", Category: "Flavored", Price: price(140), Cost: price(70), Stock: 400, Unit: "pack", LowStockThreshold: 100},
		{ID: "3", Name: "Jeera Khakhra", Category: "Flavored", Price: price(140), Cost: price(70), Stock: 350, Unit: "pack", LowStockThreshold: 100},
		{ID: "4", Name: "Masala Khakhra", Category: "Flavored", Price: price(150), Cost: price(75), Stock: 450, Unit: "pack", LowStockThreshold: 100},
		{ID: "5", Name: "Garlic Khakhra", Category: "Flavored", Price: price(150), Cost: price(75), Stock: 300, Unit: "pack", LowStockThreshold: 100},
		{ID: "6", Name: "Pizza Khakhra", Category: "Premium", Price: price(180), Cost: price(90), Stock: 200, Unit: "pack", LowStockThreshold: 80},
		{ID: "7", Name: "Pani Puri Khakhra", Category: "Premium", Price: price(180), Cost: price(90), Stock: 180, Unit: "pack", LowStockThreshold: 80},
		{ID: "8", Name: "Pudina Khakhra", Category: "Flavored", Price: price(140), Cost: price(70), Stock: 250, Unit: "pack", LowStockThreshold: 100},
	}
}

// SeedRawMaterials son los insumos de producción iniciales.
func SeedRawMaterials() []entity.RawMaterial {
	return []entity.RawMaterial{
		{ID: "1", Name: "Wheat Flour", Quantity: 500, Unit: "kg", CostPerUnit: price(40), Supplier: "Grain Traders", LowStockThreshold: 100},
		{ID: "2", Name: "Cooking Oil", Quantity: 200, Unit: "liters", CostPerUnit: price(150), Supplier: "Oil Suppliers", LowStockThreshold: 50},
		{ID: "3", Name: "Salt", Quantity: 50, Unit: "kg", CostPerUnit: price(20), Supplier: "Spice Mart", LowStockThreshold: 10},
		{ID: "4", Name: "Cumin Seeds", Quantity: 30, Unit: "kg", CostPerUnit: price(400), Supplier: "Spice Mart", LowStockThreshold: 10},
		{ID: "5", Name: "Fenugreek Leaves", Quantity: 15, Unit: "kg", CostPerUnit: price(500), Supplier: "Spice Mart", LowStockThreshold: 5},
		{ID: "6", Name: "Spice Mix", Quantity: 40, Unit: "kg", CostPerUnit: price(300), Supplier: "Spice Mart", LowStockThreshold: 10},
		{ID: "7", Name: "Garlic Powder", Quantity: 20, Unit: "kg", CostPerUnit: price(600), Supplier: "Spice Mart", LowStockThreshold: 5},
		{ID: "8", Name: "Packaging Material", Quantity: 1000, Unit: "pieces", CostPerUnit: price(5), Supplier: "Pack Solutions", LowStockThreshold: 200},
	}
}

// SeedCustomers son los clientes iniciales.
func SeedCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "1", Name: "Rajesh Patel", Email: "rajesh@example.com", Phone: "9876543210", Address: "123 MG Road, Ahmedabad, Gujarat 380001", GSTNumber: "24AAAAA0000A1Z5"},
		{ID: "2", Name: "Priya Shah", Email: "priya@example.com", Phone: "9876543211", Address: "456 SG Highway, Ahmedabad, Gujarat 380015"},
		{ID: "3", Name: "Mumbai Retail Store", Email: "orders@mumbaistore.com", Phone: "9876543212", Address: "789 Linking Road, Mumbai, Maharashtra 400050", GSTNumber: "27BBBBB1111B1Z5"},
		{ID: "4", Name: "Delhi Supermart", Email: "delhi@example.com", Phone: "9876543213", Address: "321 Connaught Place, New Delhi 110001", GSTNumber: "07CCCCC2222C1Z5"},
	}
}
