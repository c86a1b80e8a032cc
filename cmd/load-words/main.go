package main

import (
	"flag"
	"log"

	"github.com/iorran/impostor/internal/config"
	"github.com/iorran/impostor/internal/db"
)

func main() {
	filePath := flag.String("file", "words.csv", "path to word pairs csv")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	inserted, err := db.LoadWordPairs(conn, *filePath)
	if err != nil {
		log.Fatalf("failed to load word pairs: %v", err)
	}
	log.Printf("loaded %d word pairs", inserted)
}
