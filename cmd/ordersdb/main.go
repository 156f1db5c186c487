package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/darianmavgo/ordersdb/config"
	"github.com/darianmavgo/ordersdb/converters"
	_ "github.com/darianmavgo/ordersdb/converters/all"
	"github.com/darianmavgo/ordersdb/converters/common"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  ordersdb [--config file.hcl] [--verbose] <input_file> [output_db] [table]")
	fmt.Println("  ordersdb --init-config <file.hcl>                  # Write default config")
}

func main() {
	args := os.Args[1:]

	var configPath string
	var verbose bool
	var cleanArgs []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--verbose":
			verbose = true
		case "--config":
			if i+1 >= len(args) {
				usage()
				os.Exit(1)
			}
			i++
			configPath = args[i]
		case "--init-config":
			if i+1 >= len(args) {
				usage()
				os.Exit(1)
			}
			if err := config.Export(args[i+1], config.DefaultConfig()); err != nil {
				fmt.Printf("Error writing config: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote default config to %s\n", args[i+1])
			return
		default:
			cleanArgs = append(cleanArgs, args[i])
		}
	}

	if len(cleanArgs) < 1 {
		usage()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if verbose {
		cfg.Verbose = true
	}

	inputPath := cleanArgs[0]
	outputPath := inputPath + ".db"
	if len(cleanArgs) >= 2 {
		outputPath = cleanArgs[1]
	}
	if len(cleanArgs) >= 3 {
		cfg.TableName = cleanArgs[2]
	}

	conv := &common.ConversionConfig{
		TableName: cfg.TableName,
		SheetName: cfg.SheetName,
	}
	if cfg.Delimiter != "" {
		conv.Delimiter = []rune(cfg.Delimiter)[0]
	}
	opts := &converters.ImportOptions{
		BatchSize: cfg.BatchSize,
		Verbose:   cfg.Verbose,
	}

	fmt.Printf("Reading source file: %s\n", inputPath)
	outcome, err := converters.Convert(inputPath, outputPath, conv, opts)
	if err != nil {
		if errors.Is(err, converters.ErrSourceNotFound) {
			fmt.Printf("Error: source file %q not found\n", inputPath)
		} else {
			fmt.Printf("Error converting file: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Source loaded with %d rows and %d columns\n", outcome.SourceRows, outcome.Columns)
	fmt.Printf("Table %s now holds %d rows\n", outcome.Table, outcome.TableRows)
	fmt.Printf("SQLite database created successfully: %s\n", outputPath)
}
