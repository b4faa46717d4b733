package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/adf/internal/config"
	"github.com/ukydev/adf/internal/leadfile"
	"github.com/ukydev/adf/internal/store"
)

func main() {
	in := flag.String("in", "", "path to the lead description JSON file")
	out := flag.String("out", "", "output path for the ADF XML (default stdout)")
	indent := flag.Int("indent", 2, "spaces per indent level, 0 for compact output")
	archive := flag.Bool("archive", false, "archive the rendered lead to MongoDB")
	source := flag.String("source", "adfgen", "source label for archived leads")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Build()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if *in == "" {
		log.Fatal("missing -in: no lead description given")
	}

	file, err := leadfile.Read(*in)
	if err != nil {
		log.Fatalf("Failed to read lead description: %v", err)
	}

	doc, err := file.Build()
	if err != nil {
		log.Fatalf("Failed to build lead: %v", err)
	}

	node, err := doc.ToXML()
	if err != nil {
		log.Fatalf("Failed to project lead: %v", err)
	}

	var rendered string
	if *indent > 0 {
		rendered = node.Indent(*indent)
	} else {
		rendered = node.String()
	}

	if *out == "" {
		fmt.Println(rendered)
	} else {
		if err := os.WriteFile(*out, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		log.WithField("path", *out).Info("Wrote ADF document")
	}

	if *archive {
		if cfg.MongoURI == "" {
			log.Fatal("archiving requested but ADF_MONGO_URI is not set")
		}
		ctx := context.Background()
		client, err := store.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer client.Disconnect(ctx)

		col := &store.MongoCollection{
			Collection: client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection),
		}
		rec, err := store.Archive(ctx, col, *source, doc)
		if err != nil {
			log.Fatalf("Failed to archive lead: %v", err)
		}
		log.WithField("lead_id", rec.LeadID).Info("Archived lead")
	}
}
