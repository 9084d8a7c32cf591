// Command impliedon bootstraps the SOFR and Fed-Funds OIS curves and prints
// the implied constant overnight rate over each window between consecutive
// policy dates, then over each Fed-Funds helper's own date window.
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
	"github.com/meenmo/ratecurve/implied"
	"github.com/meenmo/ratecurve/marketdata/postgres"
	"github.com/meenmo/ratecurve/preset"
	"github.com/meenmo/ratecurve/quote"
	"github.com/meenmo/ratecurve/utils"
)

type runConfig struct {
	Database    postgres.Config `yaml:"database"`
	EvalDate    string          `yaml:"eval_date"`    // YYYY-MM-DD; empty means today
	PolicyDates []string        `yaml:"policy_dates"` // upcoming central-bank decision dates
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
	if len(cfg.PolicyDates) < 2 {
		logger.Fatal("need at least two policy dates")
	}
	policyDates := make([]time.Time, 0, len(cfg.PolicyDates))
	for _, d := range cfg.PolicyDates {
		policyDates = append(policyDates, utils.DateParser(d))
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
	for _, t := range preset.SOFRTickers() {
		quotes.Get(t)
	}
	for _, t := range preset.FedFundsTickers() {
		quotes.Get(t)
	}
	effectiveRate := quote.Percent(quotes.Get(preset.FedFundsEffectiveTicker))
	calendars := calendar.NewRegistry(store)

	if err := quotes.UpdateAll(ctx, store); err != nil {
		logger.WithError(err).Fatal("refresh quotes")
	}

	sofr, err := preset.BuildSOFR(ctx, evalDate, quotes, calendars)
	if err != nil {
		logger.WithError(err).Fatal("bootstrap SOFR curve")
	}
	fedFunds, err := preset.BuildFedFunds(ctx, evalDate, quotes, calendars, sofr.Handle)
	if err != nil {
		logger.WithError(err).Fatal("bootstrap Fed-Funds curve")
	}

	ffCal, err := calendars.Get(ctx, preset.CalendarFedFunds)
	if err != nil {
		logger.WithError(err).Fatal("fetch Fed-Funds calendar")
	}

	// Current implied overnight level: the shortest OIS bucket covering the
	// first policy date, else the raw effective rate.
	spot := ffCal.AddBusinessDays(evalDate, 2)
	if bucket := implied.PickTenorBucket(preset.FedFundsBuckets(), spot, policyDates, ffCal); bucket != nil {
		fmt.Printf("current implied o/n: %s (%s) = %.6f\n",
			bucket.Ticker, bucket.Tenor, quote.Percent(quotes.Get(bucket.Ticker)).Value())
	} else {
		fmt.Printf("current implied o/n: %s = %.6f\n",
			preset.FedFundsEffectiveTicker, effectiveRate.Value())
	}

	prior := effectiveRate.Value()
	for i := 1; i < len(policyDates); i++ {
		effective, maturity := policyDates[i-1], policyDates[i]
		rate, err := implied.Rate(fedFunds.Index, fedFunds.Discount, prior, effective, maturity, ffCal, implied.Options{})
		if err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"effective": effective.Format("2006-01-02"),
				"maturity":  maturity.Format("2006-01-02"),
			}).Fatal("implied rate solve")
		}
		fmt.Printf("%s  %s  %.8f\n",
			effective.Format("2006-01-02"), maturity.Format("2006-01-02"), rate)
		prior = rate
	}

	for _, h := range fedFunds.Helpers {
		rate, err := implied.Rate(fedFunds.Index, fedFunds.Discount, effectiveRate.Value(), h.EarliestDate(), h.PillarDate(), ffCal, implied.Options{})
		if err != nil {
			logger.WithError(err).Fatal("implied rate solve over helper window")
		}
		fmt.Printf("%s  %s  %.8f\n",
			h.EarliestDate().Format("2006-01-02"), h.PillarDate().Format("2006-01-02"), rate)
	}
}
