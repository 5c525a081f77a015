package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fieldscope/fieldscope/internal/llm"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/store/sqlite"
)

type agentConfig struct {
	DBPath string `yaml:"db_path"`
	TopK   int    `yaml:"top_k"`

	LLM struct {
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"llm"`
}

func main() {
	configPath := flag.String("config", "", "Path to agent config YAML")
	query := flag.String("query", "", "Question to ask (required)")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}
	if *query == "" {
		log.Fatal("--query required")
	}

	conf, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if conf.DBPath == "" {
		log.Fatal("db_path required in config")
	}
	if conf.LLM.BaseURL == "" || conf.LLM.Model == "" {
		log.Fatal("llm base_url and model required in config")
	}

	topK := conf.TopK
	if topK <= 0 {
		topK = 20
	}

	ctx := context.Background()
	st, err := sqlite.OpenSQLite(ctx, conf.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer st.Close()

	records, err := st.RecentRecords(ctx, topK)
	if err != nil {
		log.Fatalf("load records: %v", err)
	}
	if len(records) == 0 {
		fmt.Println("No activity logs found.")
		return
	}

	client := &llm.Client{
		BaseURL: conf.LLM.BaseURL,
		Model:   conf.LLM.Model,
		APIKey:  conf.LLM.APIKey,
	}

	answer, err := client.Answer(ctx, *query, records)
	if err != nil {
		log.Fatalf("llm answer: %v", err)
	}
	fmt.Println(answer)
}

func loadConfig(path string) (agentConfig, error) {
	var cfg agentConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
