package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// selfTestCase is one fixed board and the board expected one generation later
type selfTestCase struct {
	name  string
	start string
	want  string
}

var selfTestCases = []selfTestCase{
	{name: "example board", start: "01000,10011,11001,01000,10001", want: "00000,10111,11111,01000,00000"},
	{name: "reproduction", start: "00000,01110,00000,00000,00000", want: "00100,00100,00100,00000,00000"},
	{name: "top edge counting", start: "01110,00000,00000,00000,00000", want: "00100,00100,00000,00000,00000"},
	{name: "side edge counting", start: "00000,00001,00001,00001,00000", want: "00000,00000,00011,00000,00000"},
	{name: "non-square grid", start: "00000,01110,00000", want: "00100,00100,00100"},
}

type selfTestResult struct {
	name string
	got  string
	want string
	err  error
}

func (r selfTestResult) passed() bool {
	return r.err == nil && r.got == r.want
}

// loadConfig layers the config file and LIFE_* environment over the defaults
func loadConfig(path string, logger *log.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Printf("using default configuration (%s not found)", path)
		config = utils.DefaultConfig()
	case err != nil:
		return config, err
	}

	if err = utils.ApplyEnv(&config); err != nil {
		return config, err
	}
	return config, nil
}

// stepGrid advances grid one generation and records the transition in stats
func stepGrid(grid *model.Grid, stats *utils.Stats) {
	start := time.Now()
	grid.Step()
	stats.Update(grid.Generation(), grid.CountLivingCells(), grid.LastTally(), time.Since(start))
}

// logStats reports a finished generation
func logStats(logger *log.Logger, grid *model.Grid, stats *utils.Stats) {
	logger.Printf("gen: %d | living: %d | births: %d | deaths: %d | survivals: %d | hash: %s | took: %v",
		stats.Generation, stats.Population, stats.Births, stats.Deaths, stats.Survivals,
		grid.GetGridHash(), stats.StepDuration)
}

// runSingle parses input, advances it one generation, and prints the encoded and pretty forms
func runSingle(w io.Writer, config utils.Config, input string, logger *log.Logger) error {
	codec, err := config.Codec()
	if err != nil {
		return err
	}
	grid, err := codec.Parse(input)
	if err != nil {
		return err
	}

	stats := utils.NewStats()
	stepGrid(grid, stats)
	if config.Verbose {
		logStats(logger, grid, stats)
	}

	if _, err = fmt.Fprintln(w, codec.Encode(grid)); err != nil {
		return errors.Wrap(err, "[runSingle] failed to write encoding")
	}
	banner := ""
	if config.ShowBanner {
		banner = config.Banner
	}
	return model.DisplayTo(w, grid, banner)
}

// runSelfTest steps a single fixed case on its own grid
func runSelfTest(tc selfTestCase) selfTestResult {
	result := selfTestResult{name: tc.name, want: tc.want}

	codec := model.DefaultCodec()
	grid, err := codec.Parse(tc.start)
	if err != nil {
		result.err = err
		return result
	}
	grid.Step()
	result.got = codec.Encode(grid)
	return result
}

// runDefaultGridTest steps the built-in grid, which holds the same board as the first case
func runDefaultGridTest(grid *model.Grid) selfTestResult {
	grid.Step()
	return selfTestResult{
		name: "default grid",
		got:  model.DefaultCodec().Encode(grid),
		want: selfTestCases[0].want,
	}
}

// runSelfTests evaluates every case, each on its own grid, and returns results in case order
func runSelfTests(cases []selfTestCase) []selfTestResult {
	var (
		eg      errgroup.Group
		results = make([]selfTestResult, len(cases))
	)
	for i, tc := range cases {
		eg.Go(func() error {
			results[i] = runSelfTest(tc)
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

// reportSelfTests prints one line per result plus a summary, and returns the number of failures
func reportSelfTests(w io.Writer, results []selfTestResult) int {
	failed := 0
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", r.name, r.err)
		case !r.passed():
			failed++
			fmt.Fprintf(w, "FAIL %s: expected %s, got %s\n", r.name, r.want, r.got)
		default:
			fmt.Fprintf(w, "PASS %s\n", r.name)
		}
	}

	if failed > 0 {
		fmt.Fprintf(w, "Tests failed (%d of %d)\n", failed, len(results))
	} else {
		fmt.Fprintln(w, "Tests passed")
	}
	return failed
}
