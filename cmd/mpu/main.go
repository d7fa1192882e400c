package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"mpu/internal/config"
	"mpu/internal/metrics"
	"mpu/internal/publisher"
	"mpu/internal/service"
	"mpu/internal/source/cardmarket"
	"mpu/internal/storage/extract"
	"mpu/internal/storage/postgres"
	"mpu/internal/storage/sheet"
	"mpu/internal/strategy"
)

const usage = `usage: mpu <command> [flags] [args]

commands:
  getstock [flags] [current-price-strategy [price-update-strategy]]
  getdata  [flags]
  update   [flags]
  stats    [flags]

Run "mpu <command> -h" for the flags of a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	os.Exit(run(os.Args[1], os.Args[2:], os.Stdin, os.Stderr))
}

// options are the command line flags shared by every command. Flags left
// unset keep the value of the config file.
type options struct {
	configPath        string
	metricsFile       string
	marketExtractPath string
	minimumPrice      float64
	parallel          bool
	workers           int

	outputPath  string
	inputPath   string
	forceUpdate bool
	stockFile   string
	statsFile   string
	assumeYes   bool

	set map[string]bool
}

func newFlagSet(command string, stderr io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "config.yaml", "path to config file")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "write run metrics to this file in the Prometheus text format")

	switch command {
	case "getstock", "getdata":
		fs.StringVar(&opts.marketExtractPath, "market-extract-path", "", "directory holding the market extract cache")
		fs.Float64Var(&opts.minimumPrice, "minimum-price", 0, "skip stock rows priced under this value")
		fs.BoolVar(&opts.parallel, "parallel", true, "price rows on a worker pool")
		fs.IntVar(&opts.workers, "workers", 0, "number of workers when running in parallel")
		fs.BoolVar(&opts.forceUpdate, "force-update", false, "refetch market extracts even when cached")
	}

	switch command {
	case "getstock":
		fs.StringVar(&opts.outputPath, "output-path", ".", "directory where "+service.StockFileName+" is written")
	case "getdata":
		fs.StringVar(&opts.inputPath, "input-path", ".", "directory holding "+service.StockCSVName)
	case "update":
		fs.StringVar(&opts.stockFile, "stock-file", service.StockFileName, "reviewed inventory to write back")
		fs.BoolVar(&opts.assumeYes, "yes", false, "do not ask for confirmation")
	case "stats":
		fs.StringVar(&opts.statsFile, "stats-file", service.StatsFileName, "stats workbook to append to")
	}

	return fs, opts
}

// apply overrides cfg with the flags given on the command line.
func (o *options) apply(cfg *config.Config) {
	if o.set["metrics-file"] {
		cfg.MetricsFile = o.metricsFile
	}
	if o.set["market-extract-path"] {
		cfg.Cache.Path = o.marketExtractPath
	}
	if o.set["minimum-price"] {
		cfg.Pricing.MinimumPrice = o.minimumPrice
	}
	if o.set["parallel"] {
		parallel := o.parallel
		cfg.Pricing.Parallel = &parallel
	}
	if o.set["workers"] {
		cfg.Pricing.Workers = o.workers
	}
}

func run(command string, args []string, stdin io.Reader, stderr io.Writer) int {
	switch command {
	case "getstock", "getdata", "update", "stats":
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stderr, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", command, usage)
		return 2
	}

	fs, opts := newFlagSet(command, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	logger := setupLogger("info")

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}
	opts.apply(cfg)

	logger = setupLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	app := &application{
		cfg:       cfg,
		opts:      opts,
		logger:    logger,
		registry:  registry,
		collector: metrics.NewCollector(registry),
		stdin:     stdin,
		stderr:    stderr,
	}
	app.client = cardmarket.New(cardmarketConfig(cfg), app.collector, logger)

	switch command {
	case "getstock":
		err = app.getStock(ctx, fs.Args())
	case "getdata":
		err = app.getData(ctx)
	case "update":
		err = app.update(ctx)
	case "stats":
		err = app.stats(ctx)
	}

	if cfg.MetricsFile != "" {
		if werr := metrics.WriteTextfile(cfg.MetricsFile, registry); werr != nil {
			logger.Error("failed to write metrics", "error", werr)
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, service.ErrUpdateCancelled):
		logger.Info("update cancelled, nothing was written")
		return 0
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted", "command", command)
		return 1
	default:
		logger.Error("command failed", "command", command, "error", err)
		return 1
	}
}

type application struct {
	cfg       *config.Config
	opts      *options
	logger    *slog.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
	client    *cardmarket.Client
	stdin     io.Reader
	stderr    io.Writer
}

func cardmarketConfig(cfg *config.Config) cardmarket.Config {
	m := cfg.Marketplace
	return cardmarket.Config{
		BaseURL:           m.BaseURL,
		Timeout:           m.Timeout,
		RequestsPerSecond: m.RequestsPerSecond,
		Burst:             m.Burst,
		MaxAttempts:       m.Retry.MaxAttempts,
		InitialBackoff:    m.Retry.InitialBackoff,
		MaxBackoff:        m.Retry.MaxBackoff,
		ItemTag:           cfg.Update.ItemTag,
		Credentials: cardmarket.Credentials{
			ConsumerKey:    m.Credentials.ClientKey,
			ConsumerSecret: m.Credentials.ClientSecret,
			Token:          m.Credentials.AccessToken,
			TokenSecret:    m.Credentials.AccessSecret,
		},
	}
}

// strategyConfigs picks the strategies named on the command line, falling
// back to the configured ones.
func strategyConfigs(cfg config.StrategiesConfig, args []string) (config.StrategyConfig, config.StrategyConfig, error) {
	if len(args) > 2 {
		return config.StrategyConfig{}, config.StrategyConfig{}, fmt.Errorf("too many arguments: %s", strings.Join(args[2:], " "))
	}

	current, update := cfg.CurrentPrice, cfg.PriceUpdate
	if len(args) > 0 && args[0] != current.Name {
		current = config.StrategyConfig{Name: args[0]}
	}
	if len(args) > 1 && args[1] != update.Name {
		update = config.StrategyConfig{Name: args[1]}
	}
	return current, update, nil
}

func (a *application) newRunner() *service.Runner {
	return service.NewRunner(a.cfg.Pricing, a.collector, a.logger)
}

func (a *application) newExtractStore() (*extract.Store, error) {
	store, err := extract.NewStore(a.cfg.Cache.Path, a.client, a.cfg.Pricing, a.collector, a.logger)
	if err != nil {
		return nil, fmt.Errorf("open market extract cache: %w", err)
	}
	return store, nil
}

func (a *application) getStock(ctx context.Context, args []string) error {
	currentCfg, updateCfg, err := strategyConfigs(a.cfg.Strategies, args)
	if err != nil {
		return err
	}

	current, err := strategy.NewCurrentPrice(currentCfg)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(strategy.CurrentPriceNames(), ", "))
	}
	updater, err := strategy.NewPriceUpdate(updateCfg)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(strategy.PriceUpdateNames(), ", "))
	}

	extracts, err := a.newExtractStore()
	if err != nil {
		return err
	}

	pricer := service.NewPricer(extracts, current, a.cfg.Pricing, a.opts.forceUpdate, a.collector, a.logger)
	svc := service.NewGetStockService(
		a.client,
		pricer,
		a.newRunner(),
		updater,
		sheet.New(a.logger),
		a.logger,
		service.GetStockConfig{
			OutputPath:   a.opts.outputPath,
			MinimumPrice: a.cfg.Pricing.MinimumPrice,
		},
	)

	_, err = svc.Run(ctx)
	return err
}

func (a *application) getData(ctx context.Context) error {
	extracts, err := a.newExtractStore()
	if err != nil {
		return err
	}

	svc := service.NewGetDataService(extracts, a.newRunner(), a.logger, service.GetDataConfig{
		InputPath:    a.opts.inputPath,
		MinimumPrice: a.cfg.Pricing.MinimumPrice,
		SampleSize:   a.cfg.Pricing.DefaultSampleSize,
		Force:        a.opts.forceUpdate,
	})

	_, err = svc.Run(ctx)
	return err
}

func (a *application) update(ctx context.Context) error {
	db, err := a.openDatabase()
	if err != nil {
		return err
	}

	var (
		updateLog service.UpdateLogStore
		txManager service.TransactionManager
		pub       service.Publisher
	)
	if db != nil {
		defer db.Close()
		updateLog = postgres.NewUpdateLogStore(db)
		txManager = postgres.NewTransactionManager(db)
	}

	if a.cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        a.cfg.RabbitMQ.URL,
			Exchange:   a.cfg.RabbitMQ.Exchange,
			RoutingKey: a.cfg.RabbitMQ.RoutingKey,
			QueueName:  a.cfg.RabbitMQ.QueueName,
		}, a.logger)
		if err != nil {
			return fmt.Errorf("connect publisher: %w", err)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	svc := service.NewUpdateService(
		sheet.New(a.logger),
		a.client,
		newPromptConfirmer(a.stdin, a.stderr),
		updateLog,
		txManager,
		pub,
		a.collector,
		a.logger,
		service.UpdateConfig{
			StockFile:     a.opts.stockFile,
			MaxPerRequest: a.cfg.Update.MaxPerRequest,
			AssumeYes:     a.opts.assumeYes,
		},
	)

	_, err = svc.Run(ctx)
	return err
}

func (a *application) stats(ctx context.Context) error {
	db, err := a.openDatabase()
	if err != nil {
		return err
	}

	var (
		snapshots service.SnapshotStore
		txManager service.TransactionManager
	)
	if db != nil {
		defer db.Close()
		snapshots = postgres.NewSnapshotStore(db)
		txManager = postgres.NewTransactionManager(db)
	}

	svc := service.NewStatsService(
		a.client,
		sheet.New(a.logger),
		snapshots,
		txManager,
		a.logger,
		service.StatsConfig{StatsFile: a.opts.statsFile},
	)

	_, err = svc.Run(ctx)
	return err
}

// openDatabase returns nil when the history database is disabled.
func (a *application) openDatabase() (*sqlx.DB, error) {
	if !a.cfg.Database.Enabled {
		return nil, nil
	}

	if err := postgres.RunMigrations(a.cfg.Database.URL()); err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("postgres", a.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	a.logger.Info("connected to database", "host", a.cfg.Database.Host, "dbname", a.cfg.Database.DBName)
	return db, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
