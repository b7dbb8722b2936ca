// Command normalize-sheets rewrites every stored sheet document through
// the current reconciliation pass. Run it after a deploy that changed
// the record shape so old saves are upgraded in place instead of on
// first load. Pass -apply to write; the default is a dry run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	sheet "github.com/hearthforge/sheet-api/internal/entities/sheet"
)

func main() {
	apply := flag.Bool("apply", false, "write normalized documents back (default is dry run)")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning stored sheets...")

	iter := client.Scan(ctx, 0, "dnd_data_*", 0).Iterator()

	var checked, rewritten int
	var corruptKeys []string

	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		char, err := sheet.Normalize([]byte(data))
		if err != nil {
			fmt.Printf("✗ Unreadable document in %s\n", key)
			corruptKeys = append(corruptKeys, key)
			continue
		}

		normalized, err := json.Marshal(char)
		if err != nil {
			fmt.Printf("Error re-encoding %s: %v\n", key, err)
			continue
		}

		if string(normalized) == data {
			continue
		}

		if *apply {
			if err := client.Set(ctx, key, normalized, 0).Err(); err != nil {
				fmt.Printf("Error writing %s: %v\n", key, err)
				continue
			}
			fmt.Printf("✓ Rewrote %s\n", key)
		} else {
			fmt.Printf("~ Would rewrite %s\n", key)
		}
		rewritten++
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d sheets, %d need rewriting, %d unreadable\n", checked, rewritten, len(corruptKeys))
	for _, key := range corruptKeys {
		fmt.Println("  unreadable:", key)
	}
	if !*apply && rewritten > 0 {
		fmt.Println("\nRe-run with -apply to write changes.")
	}
}
