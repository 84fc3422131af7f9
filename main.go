// Command life advances a Game of Life board by one generation.
//
// With a board argument such as "00000,01110,00000" it prints the next
// generation in the same encoding followed by a pretty rendering. With no
// argument it runs the built-in self-test boards.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sheikhrachel/go-life/model"
)

const defaultConfigPath = "config.json"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath string
		banner     bool
		verbose    bool
	)

	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", defaultConfigPath, "path to a JSON config file")
	fs.BoolVar(&banner, "banner", false, "print a banner line before the pretty rendering")
	fs.BoolVar(&verbose, "v", false, "verbose output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: life [flags] [STATE]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "life: ", 0)

	config, err := loadConfig(configPath, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	// Flags win over the file and environment only when given explicitly
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "banner":
			config.ShowBanner = banner
		case "v":
			config.Verbose = verbose
		}
	})

	if fs.NArg() > 0 {
		input := strings.Join(fs.Args(), config.RowDelimiter)
		if err = runSingle(stdout, config, input, logger); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	grid := model.NewDefaultGrid()
	if config.Verbose {
		logger.Printf("default grid %dx%d:\n%s", grid.GetRows(), grid.GetCols(), model.Pretty(grid))
	}

	results := append(runSelfTests(selfTestCases), runDefaultGridTest(grid))
	if failed := reportSelfTests(stdout, results); failed > 0 {
		return 1
	}
	return 0
}
