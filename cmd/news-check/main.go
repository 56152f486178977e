package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/adapters/tabular"
	"github.com/arjun/fake-news-filter/internal/config"
	"github.com/arjun/fake-news-filter/internal/core"
	"github.com/arjun/fake-news-filter/internal/factory"
	"github.com/arjun/fake-news-filter/internal/logging"
	"github.com/arjun/fake-news-filter/internal/trusted"
)

var (
	// Model artifact flags
	vectorizerPath = flag.String("vectorizer", "./ml_models/vectorizer.json", "Path to the vectorizer artifact")
	classifierPath = flag.String("model", "./ml_models/model.json", "Path to the classifier artifact")

	// Classification flags
	shortThreshold = flag.Int("threshold", 50, "Word count below which text is flagged as short")
	trustedSources = flag.String("trusted", "", "Comma-separated list of trusted feed sources")

	// Input flags
	inputFile  = flag.String("file", "", "Input text file (use stdin if not specified)")
	csvFile    = flag.String("csv", "", "Classify a CSV file in batch mode instead of a single text")
	columnHint = flag.String("column", "", "Name of the text column for batch mode")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	var cfg *config.Config
	var err error

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		// Create config from command line flags
		cfg = createConfigFromFlags()
	}

	// Load model artifacts
	modelFactory := factory.NewModelFactory(cfg, logger)
	models := modelFactory.CreateModelBundle()
	if err := models.Err(); err != nil {
		logger.Fatal("Failed to load model artifacts", zap.Error(err))
	}

	// Parse trusted sources
	var sources []string
	if *trustedSources != "" {
		sources = strings.Split(*trustedSources, ",")
	} else {
		sources = cfg.GetStringSlice("trusted.sources")
	}
	trustedChecker := trusted.NewChecker(sources, logger)

	normalizerFactory := factory.NewNormalizerFactory(logger)
	classifyCfg := cfg.GetClassify()

	// One-shot runs have no use for a result cache
	service := core.NewClassificationService(
		models,
		normalizerFactory.CreateTextNormalizer(),
		nil,
		logger,
		false,
		time.Duration(0),
		classifyCfg.ShortWordThreshold,
		classifyCfg.FeedShortWordThreshold,
		cfg.GetBatch().MaxRecords,
		trustedChecker.Sources(),
	)

	if *csvFile != "" {
		runBatch(service, logger)
		return
	}
	runSingle(service, logger)
}

// runSingle classifies one text read from a file or stdin
func runSingle(service *core.ClassificationService, logger *zap.Logger) {
	var reader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		reader = file
		logger.Info("Reading text from file", zap.String("file", *inputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading text from stdin")
	}

	textBytes, err := io.ReadAll(reader)
	if err != nil {
		logger.Fatal("Failed to read input text", zap.Error(err))
	}
	text := string(textBytes)

	fmt.Printf("\n=== Input ===\n")
	fmt.Printf("Text length: %d bytes\n", len(text))
	fmt.Printf("\n=== Analysis ===\n")

	startTime := time.Now()
	result, err := service.ClassifyText(context.Background(), text)
	if err != nil {
		logger.Fatal("Failed to classify text", zap.Error(err))
	}
	duration := time.Since(startTime)

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Prediction: %s\n", result.Label)
	fmt.Printf("Word count: %d\n", result.WordCount)
	fmt.Printf("Short text: %t\n", result.IsShort)
	if result.Score != nil {
		fmt.Printf("Confidence score: %.4f (close to 0 is uncertain)\n", *result.Score)
	} else {
		fmt.Printf("Confidence score: not available\n")
	}
	fmt.Printf("Model used: %s\n", result.ModelUsed)
	fmt.Printf("Processing time: %v\n", duration)
}

// runBatch classifies the rows of a CSV file and prints aggregated counts
func runBatch(service *core.ClassificationService, logger *zap.Logger) {
	file, err := os.Open(*csvFile)
	if err != nil {
		logger.Fatal("Failed to open CSV file", zap.Error(err), zap.String("file", *csvFile))
	}
	defer file.Close()

	table, err := tabular.ReadTable(file)
	if err != nil {
		logger.Fatal("Failed to parse CSV file", zap.Error(err))
	}

	startTime := time.Now()
	summary, err := service.ClassifyTable(context.Background(), table, *columnHint)
	if err != nil {
		logger.Fatal("Failed to classify batch", zap.Error(err))
	}
	duration := time.Since(startTime)

	fmt.Printf("\n=== Batch Results ===\n")
	fmt.Printf("Processed: %d\n", summary.TotalCount)
	fmt.Printf("Real: %d\n", summary.RealCount)
	fmt.Printf("Fake: %d\n", summary.FakeCount)
	fmt.Printf("Processing time: %v\n", duration)

	if *verbose {
		fmt.Printf("\n")
		for i, record := range summary.Results {
			preview := record.Text
			if len(preview) > 60 {
				preview = preview[:60] + "..."
			}
			fmt.Printf("%4d. [%s] %s\n", i+1, record.Result.Label, preview)
		}
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("model.vectorizer_path", *vectorizerPath)
	v.Set("model.classifier_path", *classifierPath)
	v.Set("classify.short_word_threshold", *shortThreshold)

	if *trustedSources != "" {
		sources := strings.Split(*trustedSources, ",")
		for i, source := range sources {
			sources[i] = strings.TrimSpace(source)
		}
		v.Set("trusted.sources", sources)
	} else {
		v.Set("trusted.sources", []string{})
	}

	return config.NewFromViper(v)
}
