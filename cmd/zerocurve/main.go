// Command zerocurve bootstraps the EUR 6M IRS curve from the quote database
// and prints the zero rate at each pillar date.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/marketdata/postgres"
	"github.com/meenmo/ratecurve/preset"
	"github.com/meenmo/ratecurve/quote"
	"github.com/meenmo/ratecurve/utils"
)

type runConfig struct {
	Database postgres.Config `yaml:"database"`
	EvalDate string          `yaml:"eval_date"` // YYYY-MM-DD; empty means today
}

func loadConfig(path string) (*runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg runConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return &cfg, nil
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}

	store, err := postgres.Open(cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("connect market data store")
	}
	defer store.Close()

	evalDate := time.Now().UTC()
	evalDate = time.Date(evalDate.Year(), evalDate.Month(), evalDate.Day(), 0, 0, 0, 0, time.UTC)
	if cfg.EvalDate != "" {
		evalDate = utils.DateParser(cfg.EvalDate)
	}

	ctx := context.Background()
	quotes := quote.NewRegistry()
	for _, t := range preset.EURIRSTickers() {
		quotes.Get(t)
	}
	calendars := calendar.NewRegistry(store)

	if err := quotes.UpdateAll(ctx, store); err != nil {
		logger.WithError(err).Fatal("refresh quotes")
	}

	crv, _, err := preset.BuildEURIRS(ctx, evalDate, quotes, calendars)
	if err != nil {
		logger.WithError(err).Fatal("bootstrap EUR IRS curve")
	}
	logger.WithFields(logrus.Fields{
		"eval_date": evalDate.Format("2006-01-02"),
		"pillars":   len(crv.Dates()),
	}).Info("curve bootstrapped")

	for _, d := range crv.Dates() {
		fmt.Printf("%s  %9.6f %%\n", d.Format("2006-01-02"), crv.ZeroRate(d)*100)
	}
}
