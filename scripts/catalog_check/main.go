package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/noah-isme/aps-eligibility-api/internal/catalog"
	"github.com/noah-isme/aps-eligibility-api/internal/repository"
	"github.com/noah-isme/aps-eligibility-api/internal/service"
	"github.com/noah-isme/aps-eligibility-api/pkg/config"
	"github.com/noah-isme/aps-eligibility-api/pkg/database"
)

func main() {
	var (
		source  string
		asJSON  bool
		timeout time.Duration
	)

	flag.StringVar(&source, "source", config.CatalogSourceStatic, "Catalog source to check (static or postgres)")
	flag.BoolVar(&asJSON, "json", false, "Print issues as JSON")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "Timeout for loading the catalog")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	src, closeFn, err := openSource(ctx, source)
	if err != nil {
		log.Fatalf("failed to open %s catalog: %v", source, err)
	}
	defer closeFn()

	universities, err := src.ListUniversities(ctx)
	if err != nil {
		log.Fatalf("failed to list universities: %v", err)
	}
	defs, err := src.ListCourseDefinitions(ctx)
	if err != nil {
		log.Fatalf("failed to list courses: %v", err)
	}

	registry := catalog.NewRegistry(universities)
	issues := catalog.Validate(registry, defs)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(issues); err != nil {
			log.Fatalf("failed to encode issues: %v", err)
		}
	} else {
		printReport(source, registry.Len(), len(defs), issues)
	}

	if len(issues) > 0 {
		os.Exit(1)
	}
}

func openSource(ctx context.Context, source string) (service.CatalogSource, func(), error) {
	switch source {
	case config.CatalogSourceStatic:
		return service.StaticCatalogSource{}, func() {}, nil
	case config.CatalogSourcePostgres:
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewCatalogRepository(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q", source)
	}
}

func printReport(source string, universities, courses int, issues []catalog.Issue) {
	fmt.Println("Catalog Check Report")
	fmt.Println("====================")
	fmt.Printf("Source: %s | Universities: %d | Course definitions: %d\n", source, universities, courses)
	for _, issue := range issues {
		fmt.Printf("[ISSUE] %s (%s)\n", issue.Course, issue.Faculty)
		fmt.Printf("  %s: %s\n", issue.Field, issue.Message)
	}
	fmt.Printf("Issues: %d\n", len(issues))
}
