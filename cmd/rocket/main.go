package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/internal/network"
	"github.com/rocketbft/rocket/internal/pipeline"
	"github.com/rocketbft/rocket/internal/policy"
	"github.com/rocketbft/rocket/internal/process"
	"github.com/rocketbft/rocket/internal/results"
	"github.com/rocketbft/rocket/internal/rounds"
	"github.com/rocketbft/rocket/internal/server"

	log "github.com/sirupsen/logrus"
)

// overrideList collects repeated -o key=value flags.
type overrideList []string

func (o *overrideList) String() string { return strings.Join(*o, ",") }

func (o *overrideList) Set(value string) error {
	*o = append(*o, value)
	return nil
}

func main() {
	log.SetFormatter(&log.TextFormatter{TimestampFormat: "15:04.000"})

	var overrides overrideList
	strategy := flag.String("strategy", "RandomFuzzer", "Fault policy to run, one of: "+strings.Join(policy.Names(), ", "))
	networkConfigPath := flag.String("network-config", "config/network/default_network.yaml", "Path to the network config file")
	strategyConfigPath := flag.String("strategy-config", "", "Path to the strategy config file (defaults to config/<strategy>.yaml)")
	flag.Var(&overrides, "o", "Strategy parameter override as key=value, repeatable")
	listenAddr := flag.String("listen", "localhost:50051", "gRPC listen address")
	interceptorCmd := flag.String("interceptor", "./rocket-interceptor", "Path to the interceptor executable")
	interceptorDir := flag.String("interceptor-dir", "./rocket_interceptor", "Working directory of the interceptor")
	resultsPath := flag.String("results", "results.db", "Path to the result database")
	csvPath := flag.String("csv", "ledger_results.csv", "CSV export path, empty to disable")
	iterations := flag.Int("iterations", 10, "Number of test iterations")
	maxLedger := flag.Uint("max-ledger", 10, "Ledger sequence every node must reach to end an iteration")
	timeout := flag.Duration("timeout", 60*time.Second, "Iteration timeout")
	ledgerTimeout := flag.Bool("ledger-timeout", false, "Restart the timeout on every validated ledger instead of once per iteration")
	autoPartition := flag.Bool("auto-partition", true, "Drop messages between partitioned peers before the policy runs")
	autoReplay := flag.Bool("auto-replay", true, "Reuse decisions for byte-identical resends")
	autoSubsets := flag.Bool("auto-subsets", true, "Extend replay reuse across broadcast subsets")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	// Load configurations
	networkConfig, err := config.ParseNetworkConfig(*networkConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	strategyPath := *strategyConfigPath
	if strategyPath == "" {
		strategyPath = fmt.Sprintf("config/%s.yaml", *strategy)
	}
	params, err := config.ParseStrategyConfig(strategyPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := params.ApplyOverrides(overrides); err != nil {
		log.Fatal(err)
	}

	// Assemble the components bottom-up: results and process management feed
	// the tracker, the tracker and network feed the policy and pipeline.
	store, err := results.CreateStore(*resultsPath, *csvPath)
	if err != nil {
		log.Fatal(err)
	}
	interceptor := process.CreateManager(*interceptorCmd, *interceptorDir)
	tracker, err := rounds.CreateTracker(rounds.Config{
		MaxIterations: *iterations,
		MaxLedgerSeq:  uint32(*maxLedger),
		Timeout:       *timeout,
		LedgerTimeout: *ledgerTimeout,
	}, interceptor, store)
	if err != nil {
		log.Fatal(err)
	}
	manager := network.CreateManager(*autoReplay, *autoSubsets)
	tracker.RegisterResetCallback(func() {
		if err := manager.ResetReplay(); err != nil {
			log.Errorf("[Controller] Failed to reset replay history: %v", err)
		}
	})

	pol, err := policy.Create(*strategy, params, policy.Environment{Network: manager, Tracker: tracker})
	if err != nil {
		log.Fatal(err)
	}
	pipe := pipeline.CreatePipeline(manager, tracker, pol, *autoPartition)

	srv, err := server.CreateServer(*listenAddr, pipe, manager, tracker, pol, networkConfig)
	if err != nil {
		log.Fatal(err)
	}

	// The interceptor connects back to the controller, so the transport must
	// be accepting before the first iteration starts it.
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve() }()

	if err := tracker.Start(); err != nil {
		log.Fatal(err)
	}

	<-tracker.Done()
	pol.Stop()
	if err := <-serveErr; err != nil {
		log.Fatal(err)
	}
	log.Info("Controller finished")
}
