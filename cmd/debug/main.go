package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/meganrobin/Item-Management-API/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	// Construct connection string
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	dbPool, err := database.NewPool(connString, database.DefaultMaxConnections, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump Players
	fmt.Println("--- Players ---")
	rows, err := dbPool.Query(ctx, "SELECT player_id, username, created_at FROM player ORDER BY player_id")
	if err != nil {
		log.Printf("Failed to query players: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int
			var username string
			var createdAt time.Time
			if err := rows.Scan(&id, &username, &createdAt); err != nil {
				log.Printf("Failed to scan player: %v", err)
			}
			fmt.Printf("ID: %d, Username: %s, CreatedAt: %v\n", id, username, createdAt)
		}
	}

	// Dump Items
	fmt.Println("\n--- Items ---")
	rows, err = dbPool.Query(ctx, "SELECT item_id, name, item_type, rarity FROM item ORDER BY item_id")
	if err != nil {
		log.Printf("Failed to query items: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int
			var name, itemType, rarity string
			if err := rows.Scan(&id, &name, &itemType, &rarity); err != nil {
				log.Printf("Failed to scan item: %v", err)
			}
			fmt.Printf("ID: %d, Name: %s, Type: %s, Rarity: %s\n", id, name, itemType, rarity)
		}
	}

	// Dump Enchantments
	fmt.Println("\n--- Enchantments ---")
	rows, err = dbPool.Query(ctx, "SELECT enchantment_id, name, effect_description FROM enchantment ORDER BY enchantment_id")
	if err != nil {
		log.Printf("Failed to query enchantments: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int
			var name, effect string
			if err := rows.Scan(&id, &name, &effect); err != nil {
				log.Printf("Failed to scan enchantment: %v", err)
			}
			fmt.Printf("ID: %d, Name: %s, Effect: %s\n", id, name, effect)
		}
	}

	// Dump Inventory Entries
	fmt.Println("\n--- Inventory Entries ---")
	query := `
		SELECT pii.player_inventory_item_id, p.username, i.name, pii.quantity
		FROM player_inventory_item pii
		JOIN player p ON pii.player_id = p.player_id
		JOIN item i ON pii.item_id = i.item_id
		ORDER BY pii.player_inventory_item_id
	`
	rows, err = dbPool.Query(ctx, query)
	if err != nil {
		log.Printf("Failed to query inventory entries: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, quantity int
			var username, itemName string
			if err := rows.Scan(&id, &username, &itemName, &quantity); err != nil {
				log.Printf("Failed to scan inventory entry: %v", err)
			}
			fmt.Printf("ID: %d, Player: %s, Item: %s, Quantity: %d\n", id, username, itemName, quantity)
		}
	}

	// Dump Enchantment Links
	fmt.Println("\n--- Enchantment Links ---")
	query = `
		SELECT p.username, i.name, e.name
		FROM item_enchantment ie
		JOIN player_inventory_item pii ON ie.player_inventory_item_id = pii.player_inventory_item_id
		JOIN player p ON pii.player_id = p.player_id
		JOIN item i ON pii.item_id = i.item_id
		JOIN enchantment e ON ie.enchantment_id = e.enchantment_id
		ORDER BY p.username, i.name
	`
	rows, err = dbPool.Query(ctx, query)
	if err != nil {
		log.Printf("Failed to query enchantment links: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var username, itemName, enchantName string
			if err := rows.Scan(&username, &itemName, &enchantName); err != nil {
				log.Printf("Failed to scan enchantment link: %v", err)
			}
			fmt.Printf("Player: %s, Item: %s, Enchantment: %s\n", username, itemName, enchantName)
		}
	}
}
