package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fieldscope/fieldscope/internal/transcript"
	"github.com/fieldscope/fieldscope/pkg/fieldscope"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/analytics"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/config"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/record"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/store"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/store/sqlite"
)

func main() {
	var (
		inputPath   = flag.String("input", "", "Plain-text transcript file")
		jsonlPath   = flag.String("jsonl", "", "JSONL transcript batch file")
		lexiconPath = flag.String("lexicon", "", "Lexicon YAML file (optional, built-in default)")
		dbPath      = flag.String("db", "", "SQLite database to persist into (optional)")
		location    = flag.String("location", "", "Default location for units mentioning none")
		recorded    = flag.String("recorded", "", "Recording date, YYYY-MM-DD (optional)")
		pretty      = flag.Bool("pretty", false, "Indent JSON output")
		summarize   = flag.Bool("summary", false, "Log an aggregate summary after extraction")
	)
	flag.Parse()

	if *inputPath == "" && *jsonlPath == "" {
		log.Fatal("--input or --jsonl required")
	}

	loader := config.Loader{LexiconPath: *lexiconPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	engine, err := fieldscope.New(fieldscope.Options{
		Lexicon:  components.Lexicon,
		Resolver: components.Resolver,
	})
	if err != nil {
		log.Fatal("Failed to build engine:", err)
	}

	transcripts, err := loadTranscripts(*inputPath, *jsonlPath)
	if err != nil {
		log.Fatal(err)
	}

	var recordedAt time.Time
	if *recorded != "" {
		recordedAt, err = time.Parse("2006-01-02", *recorded)
		if err != nil {
			log.Fatalf("invalid --recorded %q: %v", *recorded, err)
		}
	}

	ctx := context.Background()
	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.OpenSQLite(ctx, *dbPath)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		defer st.Close()
	}

	var all []record.LogRecord
	for _, tr := range transcripts {
		meta := fieldscope.Metadata{
			Title:      tr.Title,
			RecordedAt: tr.RecordedAt,
			Location:   tr.Location,
		}
		if meta.RecordedAt.IsZero() {
			meta.RecordedAt = recordedAt
		}
		if meta.Location == "" {
			meta.Location = *location
		}

		res := engine.Extract(fieldscope.Input{Text: tr.Text, Metadata: meta})
		for _, d := range res.Diagnostics {
			log.Printf("Warning: %s: unit %d skipped: %v", tr.Title, d.UnitIndex, d.Err)
		}
		if res.Reason != "" {
			log.Printf("%s: no logs extracted (%s)", tr.Title, res.Reason)
		}

		if st != nil {
			err := st.SaveTranscription(ctx, store.Transcription{
				ID:         uuid.NewString(),
				Title:      tr.Title,
				Text:       tr.Text,
				RecordedAt: meta.RecordedAt,
				CreatedAt:  time.Now().UTC(),
			}, res.Records)
			if err != nil {
				log.Fatalf("persist %s: %v", tr.Title, err)
			}
		}

		all = append(all, res.Records...)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(all); err != nil {
		log.Fatal("encode output:", err)
	}

	if *summarize {
		sum := analytics.Summarize(all)
		log.Printf("Extracted %d records across %d locations (%d with measurements, %d mapped)",
			sum.Total, len(sum.ByLocation), sum.Measurements, sum.Mapped)
	}
}

func loadTranscripts(inputPath, jsonlPath string) ([]transcript.Transcript, error) {
	if jsonlPath != "" {
		return transcript.LoadFromJSONL(jsonlPath)
	}
	tr, err := transcript.LoadFromFile(inputPath)
	if err != nil {
		return nil, err
	}
	return []transcript.Transcript{tr}, nil
}
