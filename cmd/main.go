// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/williape/desktop-redactor/internal/config"
	"github.com/williape/desktop-redactor/internal/core"
	"github.com/williape/desktop-redactor/internal/detector"
	"github.com/williape/desktop-redactor/internal/formatters"
	csvformatter "github.com/williape/desktop-redactor/internal/formatters/csv"
	jsonformatter "github.com/williape/desktop-redactor/internal/formatters/json"
	textformatter "github.com/williape/desktop-redactor/internal/formatters/text"
	"github.com/williape/desktop-redactor/internal/help"
	"github.com/williape/desktop-redactor/internal/preprocessors"
	"github.com/williape/desktop-redactor/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	inputFile        string
	inputText        string
	configFile       string
	outputFormat     string
	confidenceLevels string
	entitiesToRun    string
	outputFile       string
	verbose          bool
	noColor          bool
	showMatch        bool
	listChecks       bool
	explainCheck     string
	showVersion      bool
	showHelp         bool
}

// finalConfiguration holds configuration resolved from config file and flags
type finalConfiguration struct {
	format           string
	confidenceLevels string
	entitiesToRun    string
	verbose          bool
	noColor          bool
}

func main() {
	flags := &configFlags{}
	flag.StringVar(&flags.inputFile, "file", "", "Path to the input file to scan (txt, md, log, csv, tsv, json, pdf, jpg, tiff)")
	flag.StringVar(&flags.inputText, "text", "", "Scan the given text instead of a file")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.outputFormat, "format", "", "Output format: text, json, csv (default: text)")
	flag.StringVar(&flags.confidenceLevels, "confidence", "", "Confidence levels to display: high, medium, low, or combinations like 'high,medium'")
	flag.StringVar(&flags.entitiesToRun, "entities", "", "Entity types to detect: PHONE_NUMBER, AU_MEDICAREPROVIDER, AU_DVA, AU_CRN, AU_PASSPORT, AU_DRIVERSLICENSE, or 'all'")
	flag.StringVar(&flags.outputFile, "output", "", "Path to output file (if not specified, output to stdout)")
	flag.BoolVar(&flags.verbose, "verbose", false, "Display detailed information for each finding")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showMatch, "show-match", false, "Display the actual matched text in findings")
	flag.BoolVar(&flags.listChecks, "list-checks", false, "List available entity checks and exit")
	flag.StringVar(&flags.explainCheck, "explain", "", "Show detailed documentation for one check and exit")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")
	flag.BoolVar(&flags.showHelp, "help", false, "Show help information")
	flag.Parse()

	if flags.showHelp {
		printUsage()
		os.Exit(0)
	}

	if flags.showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	cfg := loadConfiguration(flags.configFile)
	finalConfig := resolveConfiguration(cfg, flags)

	if flags.listChecks {
		fmt.Print(help.FormatCheckList(collectCheckInfo(cfg)))
		os.Exit(0)
	}

	if flags.explainCheck != "" {
		explainCheck(cfg, flags.explainCheck)
		os.Exit(0)
	}

	text, err := resolveInput(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enabled := core.ParseEntitiesToRun(splitList(finalConfig.entitiesToRun))
	engine := core.NewAnalyzerEngine(core.BuildRecognizerSet(enabled, cfg)...)
	matches := engine.AnalyzeText(text, core.EnabledEntities(enabled))

	result, err := formatResults(matches, finalConfig, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeResult(result, flags.outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	if configPath == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		return config.DefaultConfig()
	}
	return cfg
}

// resolveConfiguration resolves final values from config file and command
// line flags, with explicitly set flags taking precedence.
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{
		format:           "text",
		confidenceLevels: "all",
		entitiesToRun:    "all",
	}

	if cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	if cfg.Defaults.ConfidenceLevels != "" {
		final.confidenceLevels = cfg.Defaults.ConfidenceLevels
	}
	if isFlagSet("confidence") && flags.confidenceLevels != "" {
		final.confidenceLevels = flags.confidenceLevels
	}

	if cfg.Defaults.Entities != "" {
		final.entitiesToRun = cfg.Defaults.Entities
	}
	if isFlagSet("entities") && flags.entitiesToRun != "" {
		final.entitiesToRun = flags.entitiesToRun
	}

	final.verbose = cfg.Defaults.Verbose
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	final.noColor = cfg.Defaults.NoColor
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	return final
}

// isFlagSet reports whether the named flag was explicitly set on the command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// resolveInput returns the text to scan from --text or from --file via the
// matching preprocessor.
func resolveInput(flags *configFlags) (string, error) {
	if flags.inputText != "" {
		return flags.inputText, nil
	}
	if flags.inputFile == "" {
		return "", fmt.Errorf("no input specified, use --file or --text (see --help)")
	}

	pp, err := preprocessors.ForFile(flags.inputFile, preprocessors.DefaultPreprocessors())
	if err != nil {
		return "", err
	}

	content, err := pp.Process(flags.inputFile)
	if err != nil {
		return "", fmt.Errorf("failed to process %s: %w", flags.inputFile, err)
	}
	return content.Text, nil
}

// buildRegistry registers the available output formatters
func buildRegistry() *formatters.Registry {
	registry := formatters.NewRegistry()
	registry.Register(textformatter.NewFormatter())
	registry.Register(jsonformatter.NewFormatter())
	registry.Register(csvformatter.NewFormatter())
	return registry
}

func formatResults(matches []detector.Match, finalConfig *finalConfiguration, flags *configFlags) (string, error) {
	registry := buildRegistry()
	formatter, ok := registry.Get(finalConfig.format)
	if !ok {
		return "", fmt.Errorf("unknown output format %q, available: %s",
			finalConfig.format, strings.Join(registry.List(), ", "))
	}

	options := formatters.FormatterOptions{
		ConfidenceLevel: parseConfidenceLevels(finalConfig.confidenceLevels),
		Verbose:         finalConfig.verbose,
		NoColor:         finalConfig.noColor || flags.outputFile != "",
		ShowMatch:       flags.showMatch,
	}
	return formatter.Format(matches, options)
}

// parseConfidenceLevels converts a comma-separated level list into the
// filter map used by formatters. "all" or empty enables every level.
func parseConfidenceLevels(levels string) map[string]bool {
	filter := make(map[string]bool)
	levels = strings.TrimSpace(strings.ToLower(levels))
	if levels == "" || levels == "all" {
		filter["high"] = true
		filter["medium"] = true
		filter["low"] = true
		return filter
	}
	for _, level := range strings.Split(levels, ",") {
		level = strings.TrimSpace(level)
		switch level {
		case "high", "medium", "low":
			filter[level] = true
		}
	}
	return filter
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// checkDocumenter is implemented by recognizers that carry CLI documentation
type checkDocumenter interface {
	GetCheckInfo() help.CheckInfo
}

func collectCheckInfo(cfg *config.Config) []help.CheckInfo {
	all := core.ParseEntitiesToRun(nil)
	var checks []help.CheckInfo
	for _, r := range core.BuildRecognizerSet(all, cfg) {
		if doc, ok := r.(checkDocumenter); ok {
			checks = append(checks, doc.GetCheckInfo())
		}
	}
	return checks
}

func explainCheck(cfg *config.Config, name string) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, check := range collectCheckInfo(cfg) {
		if strings.ToUpper(check.Name) == want {
			fmt.Print(help.FormatCheckDetail(check))
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Unknown check: %s\n", name)
	fmt.Fprintf(os.Stderr, "Use --list-checks to see available checks\n")
	os.Exit(1)
}

func writeResult(result, outputFile string) error {
	if outputFile == "" {
		fmt.Println(result)
		return nil
	}

	cleanPath := filepath.Clean(outputFile)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed in output path: %s", outputFile)
	}
	if err := os.WriteFile(cleanPath, []byte(result+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Results written to %s\n", cleanPath)
	return nil
}

func printUsage() {
	fmt.Printf(`au-scan detects Australian identity documents and phone numbers in text,
structured files, PDFs, and image metadata.

Usage:
  au-scan --file <path> [options]
  au-scan --text "<text>" [options]

Options:
`)
	flag.PrintDefaults()
	fmt.Printf(`
Examples:
  au-scan --file referral.pdf
  au-scan --file export.csv --entities AU_CRN,AU_MEDICAREPROVIDER --format json
  au-scan --text "Provider 2426621B" --show-match
  au-scan --list-checks
  au-scan --explain AU_DVA
`)
}
