// Package console is a line-oriented front end over weather.Session: pick a
// month, pick an analysis, and changing the month re-runs the last analysis.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/i474232898/weather-data-analyzer/internal/weather"
)

const helpText = `Commands:
  months                  list month names
  month <name|1-12>       select a month (re-runs the last analysis)
  <analysis> [threshold]  run an analysis for the selected month
  help                    show this help
  quit                    exit
Analyses: average-temperature, hot-days, cold-days, rainy-days, extreme-temperatures, humidity-analysis`

// Run reads commands from in until EOF, "quit", or ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, runner weather.QueryRunner) error {
	session := weather.NewSession(runner)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Weather Data Analyzer. Type 'help' for commands.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		fmt.Fprintln(out, strings.TrimRight(execute(session, line), "\n"))
	}
}

func execute(session *weather.Session, line string) string {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "help":
		return helpText
	case "months":
		return strings.Join(weather.MonthNames(), "\n")
	case "month":
		return session.SetMonth(arg).Text
	}

	kind := weather.Kind(cmd)
	if !kind.Valid() {
		return fmt.Sprintf("unknown command %q; type 'help'", cmd)
	}

	sel := weather.Selection{Kind: kind}
	if arg != "" {
		t, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Sprintf("invalid threshold %q", arg)
		}
		sel.Threshold = &t
	}
	return session.Select(sel).Text
}
