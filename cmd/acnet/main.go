// SPDX-License-Identifier: MIT

// Command acnet generates a random component inventory, composes series and
// parallel networks from it, prints their impedance at the shared frequency,
// and optionally sweeps the composed network into an XLSX workbook and a
// Bode plot.
//
// Usage:
//
//	acnet [-config acnet.yaml] [-count N] [-seed S] [-omega W] [-verbose]
//	      [-add r=10 -add c=1e-6 ...] [-xlsx out.xlsx] [-plot bode.svg]
//
// Flags given on the command line override the config file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/acnet/config"
	"github.com/katalvlaran/acnet/network"
)

func main() {
	cfgPath := flag.String("config", "", "YAML run configuration")
	count := flag.Int("count", config.DefaultCount, "number of random components")
	seed := flag.Int64("seed", config.DefaultSeed, "random seed")
	omega := flag.Float64("omega", 0, "angular frequency override in rad/s")
	verbose := flag.Bool("verbose", true, "print impedance magnitude and phase")
	xlsx := flag.String("xlsx", "", "write an XLSX report to this path")
	plotPath := flag.String("plot", "", "write a Bode plot (.png or .svg) to this path")
	var extra []request
	flag.Func("add", "append a component as kind=value (r, c or l); repeatable", func(s string) error {
		sp, err := parseRequest(s)
		if err != nil {
			return err
		}
		extra = append(extra, sp)
		return nil
	})
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.DefaultConfig()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadFromPath(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("Config loaded: %s", *cfgPath)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Inventory.Count = *count
		case "seed":
			cfg.Inventory.Seed = *seed
		case "omega":
			w := *omega
			cfg.Omega = &w
		case "verbose":
			cfg.Verbose = *verbose
		case "xlsx":
			cfg.Output.XLSX = *xlsx
		case "plot":
			cfg.Output.Plot = *plotPath
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg, extra, os.Stdout); err != nil {
		log.Fatalf("acnet: %v", err)
	}
}

// request is one component requested with -add.
type request struct {
	kind  network.Kind
	value float64
}

func parseRequest(s string) (request, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return request{}, fmt.Errorf("%q: want kind=value", s)
	}
	kind, err := network.ParseKind(k)
	if err != nil {
		return request{}, err
	}
	if !kind.IsComponent() {
		return request{}, fmt.Errorf("%q: %w", k, network.ErrUnknownKind)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return request{}, fmt.Errorf("%q: %w", v, err)
	}

	return request{kind: kind, value: value}, nil
}
