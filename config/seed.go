package config

import (
	"context"
	"log"
	"time"

	"github.com/matthewhartstonge/argon2"
)

// SeedData ensures the fixed admin account and a starter catalog exist.
// Any failure here is fatal: the store cannot run without its admin user.
func SeedData() {
	ctx := context.Background()

	seedAdmin(ctx)
	seedCatalog(ctx)
}

func seedAdmin(ctx context.Context) {
	var exists int
	if err := DB.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email=$1", AppConfig.AdminEmail).Scan(&exists); err != nil {
		log.Fatalf("Failed to check admin account: %v", err)
	}

	if exists > 0 {
		// Role may have been stripped by a manual edit; reassert it.
		if _, err := DB.Exec(ctx, "UPDATE users SET role='admin' WHERE email=$1 AND role <> 'admin'", AppConfig.AdminEmail); err != nil {
			log.Fatalf("Failed to ensure admin role: %v", err)
		}
		return
	}

	argon := argon2.DefaultConfig()
	hash, err := argon.HashEncoded([]byte(AppConfig.AdminPassword))
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now()
	_, err = DB.Exec(ctx,
		"INSERT INTO users (email, password, role, created_at, updated_at) VALUES ($1,$2,'admin',$3,$4)",
		AppConfig.AdminEmail, string(hash), now, now)
	if err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Seeded admin account %s", AppConfig.AdminEmail)
}

func seedCatalog(ctx context.Context) {
	var count int
	if err := DB.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		log.Fatalf("Failed to check categories: %v", err)
	}
	if count > 0 {
		return
	}

	categories := []string{"Smartphones", "Laptops", "Headphones"}
	categoryIDs := make(map[string]int, len(categories))
	for _, name := range categories {
		var id int
		if err := DB.QueryRow(ctx, "INSERT INTO categories (name) VALUES ($1) RETURNING id", name).Scan(&id); err != nil {
			log.Fatalf("Failed to seed category %q: %v", name, err)
		}
		categoryIDs[name] = id
	}

	products := []struct {
		name        string
		price       string
		stock       int
		description string
		category    string
	}{
		{"iPhone 15", "999.00", 10, "Apple smartphone", "Smartphones"},
		{"MacBook Air", "1299.00", 5, "Apple laptop", "Laptops"},
		{"AirPods Pro", "249.00", 25, "Wireless earbuds", "Headphones"},
	}

	for _, p := range products {
		_, err := DB.Exec(ctx,
			"INSERT INTO products (name, description, price, stock, image_url, category_id) VALUES ($1,$2,$3,$4,$5,$6)",
			p.name, p.description, p.price, p.stock, "/images/placeholder-product.jpg", categoryIDs[p.category])
		if err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.name, err)
		}
	}

	log.Println("Seeded starter catalog")
}
