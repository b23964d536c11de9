package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/meganrobin/Item-Management-API/internal/database"
)

const batchSize = 5000

var (
	itemTypes = []string{"weapon", "food", "clothing"}

	rarities      = []string{"common", "uncommon", "rare", "epic", "legendary"}
	rarityWeights = []float64{0.50, 0.25, 0.15, 0.08, 0.02}

	quantities      = []int{1, 2, 3, 4, 5, 10, 20, 50}
	quantityWeights = []float64{0.4, 0.25, 0.15, 0.1, 0.05, 0.03, 0.015, 0.005}

	nameWords = []string{
		"Iron", "Ember", "Frost", "Gilded", "Ancient", "Swift", "Grim", "Radiant",
		"Hollow", "Storm", "Silent", "Verdant", "Crimson", "Obsidian", "Lunar", "Woven",
	}

	enchantmentKinds = []string{"Blessing", "Curse", "Enhancement", "Aura"}

	enchantmentEffects = []string{
		"Increases damage by 10%",
		"Adds fire damage",
		"Increases critical hit chance",
		"Restores health on hit",
		"Increases movement speed",
		"Adds poison damage",
		"Reduces stamina consumption",
		"Increases armor penetration",
		"Adds lightning damage",
		"Increases luck",
	}
)

func main() {
	players := flag.Int("players", 1000, "number of players to generate")
	items := flag.Int("items", 100, "number of items to generate")
	enchantments := flag.Int("enchantments", 50, "number of enchantments to generate")
	countOnly := flag.Bool("count", false, "print per-table row counts and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	pool, err := database.NewPool(connString, database.DefaultMaxConnections, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	if *countOnly {
		if err := printCounts(ctx, pool); err != nil {
			log.Fatalf("Failed to count rows: %v", err)
		}
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := generate(ctx, pool, rng, *players, *items, *enchantments); err != nil {
		log.Fatalf("Data generation failed: %v", err)
	}

	if err := printCounts(ctx, pool); err != nil {
		log.Fatalf("Failed to count rows: %v", err)
	}
}

func generate(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, numPlayers, numItems, numEnchantments int) error {
	fmt.Println("Generating players...")
	batch := &pgx.Batch{}
	for i := 0; i < numPlayers; i++ {
		batch.Queue(
			"INSERT INTO player (username) VALUES ($1) ON CONFLICT DO NOTHING",
			fmt.Sprintf("%s_%s_%d", pick(rng, nameWords), pick(rng, enchantmentKinds), i),
		)
		if batch.Len() >= batchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return fmt.Errorf("insert players: %w", err)
			}
			batch = &pgx.Batch{}
		}
	}
	if err := flushBatch(ctx, pool, batch); err != nil {
		return fmt.Errorf("insert players: %w", err)
	}

	fmt.Println("Generating items...")
	batch = &pgx.Batch{}
	for i := 0; i < numItems; i++ {
		itemType := pick(rng, itemTypes)
		batch.Queue(
			"INSERT INTO item (name, item_type, rarity) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
			fmt.Sprintf("%s %s %d", pick(rng, nameWords), itemType, i),
			itemType,
			weightedPick(rng, rarities, rarityWeights),
		)
	}
	if err := flushBatch(ctx, pool, batch); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}

	fmt.Println("Generating enchantments...")
	batch = &pgx.Batch{}
	for i := 0; i < numEnchantments; i++ {
		batch.Queue(
			"INSERT INTO enchantment (name, effect_description) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			fmt.Sprintf("%s %s %d", pick(rng, nameWords), pick(rng, enchantmentKinds), i),
			pick(rng, enchantmentEffects),
		)
	}
	if err := flushBatch(ctx, pool, batch); err != nil {
		return fmt.Errorf("insert enchantments: %w", err)
	}

	fmt.Println("Generating player inventory items...")
	totalEntries := 0
	batch = &pgx.Batch{}
	for playerID := 1; playerID <= numPlayers; playerID++ {
		perPlayer := 5 + rng.Intn(15)
		for j := 0; j < perPlayer; j++ {
			batch.Queue(
				"INSERT INTO player_inventory_item (player_id, item_id, quantity) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
				playerID,
				1+rng.Intn(numItems),
				weightedPickInt(rng, quantities, quantityWeights),
			)
			totalEntries++
		}
		if batch.Len() >= batchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return fmt.Errorf("insert inventory entries: %w", err)
			}
			batch = &pgx.Batch{}
			fmt.Printf("Processed players up to %d, entries queued so far: %d\n", playerID, totalEntries)
		}
	}
	if err := flushBatch(ctx, pool, batch); err != nil {
		return fmt.Errorf("insert inventory entries: %w", err)
	}

	fmt.Println("Generating item enchantments...")
	rows, err := pool.Query(ctx, "SELECT player_inventory_item_id FROM player_inventory_item")
	if err != nil {
		return fmt.Errorf("list inventory entries: %w", err)
	}
	entryIDs, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return fmt.Errorf("scan inventory entries: %w", err)
	}

	applied := 0
	batch = &pgx.Batch{}
	for _, entryID := range entryIDs {
		// 30% of entries get an enchantment
		if rng.Float64() >= 0.3 {
			continue
		}
		batch.Queue(
			"INSERT INTO item_enchantment (player_inventory_item_id, enchantment_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			entryID,
			1+rng.Intn(numEnchantments),
		)
		applied++
		if batch.Len() >= batchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return fmt.Errorf("insert item enchantments: %w", err)
			}
			batch = &pgx.Batch{}
		}
	}
	if err := flushBatch(ctx, pool, batch); err != nil {
		return fmt.Errorf("insert item enchantments: %w", err)
	}

	fmt.Printf("Generated enchantment links: %d\n", applied)
	return nil
}

func flushBatch(ctx context.Context, pool *pgxpool.Pool, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	return pool.SendBatch(ctx, batch).Close()
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func weightedPick(rng *rand.Rand, values []string, weights []float64) string {
	return values[weightedIndex(rng, weights)]
}

func weightedPickInt(rng *rand.Rand, values []int, weights []float64) int {
	return values[weightedIndex(rng, weights)]
}

func weightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

func printCounts(ctx context.Context, pool *pgxpool.Pool) error {
	tables := []string{"player", "item", "enchantment", "player_inventory_item", "item_enchantment"}

	fmt.Println("\n=== DATA STATISTICS ===")
	total := 0
	for _, table := range tables {
		var count int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return fmt.Errorf("count %s: %w", table, err)
		}
		fmt.Printf("%s: %d\n", table, count)
		total += count
	}
	fmt.Printf("TOTAL ROWS: %d\n", total)
	return nil
}
