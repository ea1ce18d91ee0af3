package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"seogen/internal/assemble"
	"seogen/internal/config"
	"seogen/internal/document"
	"seogen/internal/generation"
	"seogen/internal/hierarchy"
	"seogen/internal/ingest"
	"seogen/internal/keyword"
	"seogen/internal/logger"
	"seogen/internal/pipeline"
	"seogen/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "seogen",
		Short: "AI-powered SEO Content Generator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := mustConfig()
			logger.Init(cfg.Log.Level, cfg.Log.Pretty)
		},
	}
	dbPath  string
	cfgPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "seogen.db", "Path to the local keyword collection database (SQLite)")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(reorderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(generateCmd)
}

func mustConfig() *config.Config {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func mustStore() *storage.SQLiteStore {
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	return store
}

// loadSession pulls the stored collection into a fresh session. Each CLI
// invocation is one critical section over the collection.
func loadSession(ctx context.Context, store *storage.SQLiteStore) *keyword.Session {
	records, err := store.LoadCollection(ctx)
	if err != nil {
		log.Fatalf("Failed to load collection: %v", err)
	}
	session := keyword.NewSession()
	session.Replace(records)
	return session
}

func saveSession(ctx context.Context, store *storage.SQLiteStore, session *keyword.Session) {
	records, err := session.Snapshot()
	if err != nil {
		log.Fatalf("Failed to snapshot collection: %v", err)
	}
	if err := store.SaveCollection(ctx, records); err != nil {
		log.Fatalf("Failed to save collection: %v", err)
	}
}

var importCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Import a keyword research CSV export as the working collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		ctx := context.Background()

		records, err := ingest.LoadFile(args[0], rune(cfg.Ingest.Delimiter[0]))
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}

		store := mustStore()
		defer store.Close()

		if err := store.SaveCollection(ctx, records); err != nil {
			log.Fatalf("Failed to save collection: %v", err)
		}
		fmt.Printf("✅ Imported %d keywords into %s\n", len(records), dbPath)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the working collection",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := mustStore()
		defer store.Close()

		records, err := store.LoadCollection(ctx)
		if err != nil {
			log.Fatalf("Failed to load collection: %v", err)
		}

		fmt.Printf("%-5s %-40s %-8s %-12s %-6s %s\n", "ID", "KEYWORD", "VOLUME", "ROLE", "ORDER", "PARENT")
		for _, r := range records {
			parent := "-"
			if r.ParentID != nil {
				parent = strconv.Itoa(*r.ParentID)
			}
			role := string(r.Role)
			if role == "" {
				role = "-"
			}
			fmt.Printf("%-5d %-40s %-8d %-12s %-6d %s\n", r.ID, r.Text, r.SearchVolume, role, r.Order, parent)
		}
	},
}

var filterMinVolume int

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Drop keywords below a search volume floor",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		ctx := context.Background()
		store := mustStore()
		defer store.Close()

		min := filterMinVolume
		if min < 0 {
			min = cfg.Ingest.MinVolume
		}

		session := loadSession(ctx, store)
		if err := session.FilterByVolumeFloor(min); err != nil {
			log.Fatalf("Filter failed: %v", err)
		}
		saveSession(ctx, store, session)

		records, _ := session.Snapshot()
		fmt.Printf("✅ Kept %d keywords with volume >= %d\n", len(records), min)
	},
}

var tagParent int

var tagCmd = &cobra.Command{
	Use:   "tag [id] [primary|section|subsection|none]",
	Short: "Assign a structural role to a keyword",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("Invalid id %q", args[0])
		}
		role, err := keyword.ParseRole(args[1])
		if err != nil {
			log.Fatalf("%v", err)
		}

		store := mustStore()
		defer store.Close()

		session := loadSession(ctx, store)
		if err := session.UpdateRole(id, role); err != nil {
			log.Fatalf("Tag failed: %v", err)
		}
		if tagParent >= 0 {
			if err := session.SetParent(id, tagParent); err != nil {
				log.Fatalf("Tag failed: %v", err)
			}
		}
		saveSession(ctx, store, session)
		fmt.Printf("✅ Tagged keyword %d as %s\n", id, args[1])
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a keyword from the collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("Invalid id %q", args[0])
		}

		store := mustStore()
		defer store.Close()

		session := loadSession(ctx, store)
		if err := session.Remove(id); err != nil {
			log.Fatalf("Remove failed: %v", err)
		}
		saveSession(ctx, store, session)
		fmt.Printf("✅ Removed keyword %d\n", id)
	},
}

var reorderCmd = &cobra.Command{
	Use:   "reorder [id,id,...]",
	Short: "Rebuild the collection in an explicit id order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		parts := strings.Split(args[0], ",")
		ids := make([]int, 0, len(parts))
		for _, p := range parts {
			id, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				log.Fatalf("Invalid id %q", p)
			}
			ids = append(ids, id)
		}

		store := mustStore()
		defer store.Close()

		session := loadSession(ctx, store)
		if err := session.Reorder(ids); err != nil {
			log.Fatalf("Reorder failed: %v", err)
		}
		saveSession(ctx, store, session)

		records, _ := session.Snapshot()
		fmt.Printf("✅ Collection reordered, %d keywords kept\n", len(records))
	},
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the nested hierarchy skeleton as JSON, without generated content",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		ctx := context.Background()
		store := mustStore()
		defer store.Close()

		records, err := store.LoadCollection(ctx)
		if err != nil {
			log.Fatalf("Failed to load collection: %v", err)
		}

		doc := &document.Document{Body: hierarchy.Build(records)}
		b, err := doc.Encode()
		if err != nil {
			log.Fatalf("Failed to serialize document: %v", err)
		}

		dir := exportOut
		if dir == "" {
			dir = cfg.Output.Dir
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}

		path := filepath.Join(dir, assemble.ExportFilename(records))
		if err := os.WriteFile(path, b, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("✅ Hierarchy exported to %s\n", path)
	},
}

var (
	genHandle    string
	genTags      string
	genImages    []string
	genHeroTag   string
	genHeroCTA   string
	genHeroLink  string
	genHeroImage string
	genOut       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate article content for the tagged collection",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		ctx := context.Background()

		if cfg.AI.APIKey == "" {
			log.Fatal("AI API key is required (set SEOGEN_API_KEY env or ai.api_key in config.yaml)")
		}

		store := mustStore()
		defer store.Close()

		records, err := store.LoadCollection(ctx)
		if err != nil {
			log.Fatalf("Failed to load collection: %v", err)
		}

		gen, err := generation.NewGemini(ctx, cfg.AI.APIKey, cfg.AI.Model,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		if err != nil {
			log.Fatalf("Failed to create generation client: %v", err)
		}

		opts := pipeline.Options{
			Handle:    genHandle,
			Tags:      genTags,
			OutputDir: cfg.Output.Dir,
			Policy: assemble.FAQPolicy{
				Min:   cfg.FAQ.Min,
				Max:   cfg.FAQ.Max,
				Exact: cfg.FAQ.Exact,
			},
		}
		if genOut != "" {
			opts.OutputDir = genOut
		}
		if genHeroTag != "" || genHeroCTA != "" || genHeroLink != "" {
			opts.Hero = &document.Hero{
				Tagline: genHeroTag,
				CTAText: genHeroCTA,
				CTALink: genHeroLink,
				Image:   genHeroImage,
			}
		}
		for _, url := range genImages {
			opts.Images = append(opts.Images, document.Image{URL: url})
		}

		fmt.Printf("🔄 Sending request to %s...\n", cfg.AI.Model)
		summary, err := pipeline.NewGeneration(gen).Run(ctx, records, opts)
		if err != nil {
			if summary != nil {
				fmt.Printf("⚠️  Document was built but not persisted: %v\n", err)
				printSummary(summary)
			}
			log.Fatalf("Generation failed: %v", err)
		}

		fmt.Printf("✅ Content generated in %.1fs\n", summary.Elapsed.Seconds())
		printSummary(summary)
	},
}

func printSummary(s *pipeline.Summary) {
	fmt.Println("📊 Generated Content Summary:")
	fmt.Printf("   Title: %s\n", s.Title)
	fmt.Printf("   Meta Description: %s\n", s.MetaDescription)
	fmt.Printf("   Sections: %d\n", s.Sections)
	fmt.Printf("   FAQs Generated: %d\n", s.FAQs)
	fmt.Printf("   File: %s\n", s.Filename)
}

func init() {
	filterCmd.Flags().IntVar(&filterMinVolume, "min", -1, "Volume floor (defaults to ingest.min_volume from config)")
	tagCmd.Flags().IntVar(&tagParent, "parent", -1, "Parent section id for subsections")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output directory (defaults to output.dir from config)")
	generateCmd.Flags().StringVar(&genHandle, "handle", "", "URL-safe handle for the document")
	generateCmd.Flags().StringVar(&genTags, "tags", "", "Comma-separated tag list (ignored when --handle is set)")
	generateCmd.Flags().StringArrayVar(&genImages, "image", nil, "Image URL to attach (repeatable)")
	generateCmd.Flags().StringVar(&genHeroTag, "hero-tagline", "", "Hero tagline")
	generateCmd.Flags().StringVar(&genHeroCTA, "hero-cta-text", "", "Hero call-to-action text")
	generateCmd.Flags().StringVar(&genHeroLink, "hero-cta-link", "", "Hero call-to-action link")
	generateCmd.Flags().StringVar(&genHeroImage, "hero-image", "", "Hero image reference")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output directory (defaults to output.dir from config)")
}
