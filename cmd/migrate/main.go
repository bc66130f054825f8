package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/config"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		fmt.Println("Error listing migrations:", err)
		os.Exit(1)
	}
	sort.Strings(files)

	ctx := context.Background()
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", file, err)
			os.Exit(1)
		}

		fmt.Println("Executing", file)
		if _, err := db.Pool.Exec(ctx, string(content)); err != nil {
			fmt.Printf("Error executing %s: %v\n", file, err)
			os.Exit(1)
		}
	}

	fmt.Println("Migrations completed")
}
