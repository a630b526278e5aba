package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/chatboost/chatboost-server/config"
	"github.com/chatboost/chatboost-server/internal/database"
	"github.com/chatboost/chatboost-server/internal/repository"
)

var (
	dryRun        = flag.Bool("dry-run", true, "Dry run mode, don't actually delete messages")
	retentionDays = flag.Int("retention-days", 90, "Days to keep chat messages")
)

func main() {
	flag.Parse()

	log.Println("🧹 Starting cleanup task...")
	log.Printf("Mode: dry-run=%v retention=%dd", *dryRun, *retentionDays)

	// 加载配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 连接数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	msgRepo := repository.NewMessageRepository(db)
	cutoff := time.Now().Add(-time.Duration(*retentionDays) * 24 * time.Hour)

	var deleted int64
	if *dryRun {
		deleted, err = msgRepo.CountOlderThan(cutoff)
		if err != nil {
			log.Fatalf("Failed to count messages: %v", err)
		}
	} else {
		deleted, err = msgRepo.DeleteOlderThan(cutoff)
		if err != nil {
			log.Fatalf("Failed to delete messages: %v", err)
		}
	}

	// 输出统计
	log.Println("\n" + strings.Repeat("=", 60))
	log.Println("📊 Cleanup Summary")
	log.Println(strings.Repeat("=", 60))
	log.Printf("Cutoff: %s", cutoff.Format(time.RFC3339))
	log.Printf("Messages affected: %d", deleted)
	if *dryRun {
		log.Println("\n⚠️  DRY RUN MODE - No messages were actually deleted")
		log.Println("   Run with -dry-run=false to actually delete")
	} else {
		log.Println("\n✅ Cleanup completed!")
	}
	log.Println(strings.Repeat("=", 60))
}
