// Command computer-use-guard validates text or automation actions against
// the safety engine the way the MCP tool dispatcher would, printing the
// verdict as JSON. It exits non-zero when any input is rejected.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sundeepg98/computer-use-guard/internal/config"
	"github.com/sundeepg98/computer-use-guard/internal/safety"
	"github.com/sundeepg98/computer-use-guard/internal/sanitize"
	"github.com/sundeepg98/computer-use-guard/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "guard.yaml", "Path to config file")
	report := flag.Bool("report", false, "Print the engine report and exit")
	action := flag.String("action", "", "Action kind to validate (click, move, drag, scroll, key, type, wait)")
	paramsJSON := flag.String("params", "{}", "Action parameters as JSON, used with -action")
	url := flag.String("url", "", "URL to validate for safe navigation")
	path := flag.String("path", "", "File path to validate for safe access")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	tel := telemetry.NewProvider(telemetry.Config{
		Enabled: cfg.Telemetry.Enabled,
		Service: cfg.Telemetry.Service,
	})
	validator := safety.NewValidator(safety.Options{
		CacheCapacity:  cfg.Safety.CacheCapacity,
		Whitelist:      cfg.Safety.Whitelist,
		CustomPatterns: cfg.Safety.CustomPatterns,
		Telemetry:      tel,
	})
	actions := safety.NewActionValidator(validator, safety.Limits{
		MaxCoordinate:  cfg.Limits.MaxCoordinate,
		MaxScroll:      cfg.Limits.MaxScrollAmount,
		MaxWaitSeconds: cfg.Limits.MaxWaitSeconds,
		MaxTextLength:  cfg.Limits.MaxTextLength,
	})

	unsafe := false
	switch {
	case *report:
		printJSON(validator.Report())
	case *action != "":
		var params map[string]any
		if err := json.Unmarshal([]byte(*paramsJSON), &params); err != nil {
			log.Fatalf("failed to parse -params: %v", err)
		}
		verdict, err := actions.ValidateAction(*action, params)
		if err != nil {
			log.Fatalf("invalid action request: %v", err)
		}
		printJSON(verdict)
		unsafe = !verdict.Safe
	case *url != "":
		verdict := safety.ValidateURL(*url)
		printJSON(verdict)
		unsafe = !verdict.Safe
	case *path != "":
		verdict := safety.ValidateFilePath(*path)
		printJSON(verdict)
		unsafe = !verdict.Safe
	case flag.NArg() > 0:
		for _, text := range flag.Args() {
			verdict := validator.ValidateText(text)
			printJSON(verdict)
			if !verdict.Safe {
				sanitize.Logf("blocked input %q: %s", text, verdict.Reason)
				unsafe = true
			}
		}
	default:
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			verdict := validator.ValidateText(scanner.Text())
			printJSON(verdict)
			if !verdict.Safe {
				unsafe = true
			}
		}
		if err := scanner.Err(); err != nil {
			log.Fatalf("read stdin: %v", err)
		}
	}

	if unsafe {
		os.Exit(1)
	}
}

func printJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	fmt.Println(string(data))
}
