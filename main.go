package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"quill/app/routes"
	"quill/config"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = strings.ToLower(os.Args[1])
	}

	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("quill version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: quill <command>
Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the publishing API server (default).

Configuration is read from the environment: QUILL_ADDR, QUILL_DB_PATH,
QUILL_UPLOADS_DIR, QUILL_SECRET, QUILL_TOKEN_TTL, QUILL_FRONTEND_ORIGIN.
`
	fmt.Println(helpText)
}

// serve loads configuration, opens the Badger DB, and runs the HTTP server.
func serve() {
	cfg := config.Load()

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	log.Printf("Starting publishing API on %s", cfg.Addr)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
