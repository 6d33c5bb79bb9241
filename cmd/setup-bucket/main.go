package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"file-gateway/infrastructure/storage"
	"file-gateway/pkg/config"
)

// Ensures the configured bucket exists. The API server does the same at
// startup; this tool is for provisioning before first boot.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	objectStorage, err := storage.NewMinioStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := objectStorage.EnsureBucket(ctx, cfg.Storage.Bucket); err != nil {
		log.Fatalf("Failed to ensure bucket %q: %v", cfg.Storage.Bucket, err)
	}

	fmt.Printf("Bucket %q is ready at %s\n", cfg.Storage.Bucket, cfg.Storage.Endpoint)
}
