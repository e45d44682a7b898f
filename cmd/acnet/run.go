// SPDX-License-Identifier: MIT
// run.go - the acnet pipeline, separated from flag parsing for tests.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/acnet/builder"
	"github.com/katalvlaran/acnet/config"
	"github.com/katalvlaran/acnet/network"
	"github.com/katalvlaran/acnet/report"
	"github.com/katalvlaran/acnet/sweep"
)

// run executes one pass:
//  1. generate the inventory (storing ω into the shared frequency),
//  2. append -add components, logging clamp warnings,
//  3. compose a series and a parallel network from the first two entries
//     plus a random nested network,
//  4. list everything at the shared frequency,
//  5. sweep the random network and export reports when configured.
func run(cfg *config.Config, extra []request, out io.Writer) error {
	opts := []builder.BuilderOption{builder.WithSeed(cfg.Inventory.Seed)}
	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}
	if len(kinds) > 0 {
		opts = append(opts, builder.WithKinds(kinds...))
	}

	inv, omega, err := builder.GenerateInventory(cfg.Inventory.Count, cfg.Inventory.MaxValue, cfg.Inventory.MaxOmega, opts...)
	if err != nil {
		return fmt.Errorf("generate inventory: %w", err)
	}
	log.Printf("Generated %d components, drawn omega %g rad/s", inv.Len(), omega)
	if cfg.Omega != nil {
		network.SetFrequency(*cfg.Omega)
		log.Printf("Frequency overridden: %g rad/s", *cfg.Omega)
	}

	for _, sp := range extra {
		c, warn, err := network.NewComponent(sp.kind, sp.value)
		if err != nil {
			return fmt.Errorf("add component: %w", err)
		}
		if warn != nil {
			log.Printf("Warning: %v", warn)
		}
		if err = inv.Append(c); err != nil {
			return fmt.Errorf("add component: %w", err)
		}
	}

	if err = compose(inv, cfg, opts); err != nil {
		return err
	}

	omega = network.GetFrequency()
	if err = network.List(out, inv, omega, cfg.Verbose); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	return export(cfg, inv, omega)
}

// compose appends Series(1, 2), Parallel(1, 2) and a random network to inv.
// Selections are deep clones, so the source entries stay independent.
func compose(inv *network.Collection, cfg *config.Config, opts []builder.BuilderOption) error {
	pick := []int{1}
	if inv.Len() > 1 {
		pick = append(pick, 2)
	}
	for _, kind := range []network.Kind{network.KindSeries, network.KindParallel} {
		nodes, err := inv.SelectAndClone(pick...)
		if err != nil {
			return fmt.Errorf("select: %w", err)
		}
		nw, err := network.NewNetwork(kind, nodes...)
		if err != nil {
			return fmt.Errorf("compose %s: %w", kind, err)
		}
		if err = inv.Append(nw); err != nil {
			return err
		}
	}

	// Offset the seed so the tree does not replay the inventory draws.
	treeOpts := append(append([]builder.BuilderOption(nil), opts...), builder.WithSeed(cfg.Inventory.Seed+1))
	tree, err := builder.BuildNode(builder.RandomNetwork(inv, cfg.Network.Depth, cfg.Network.Fanout), treeOpts...)
	if err != nil {
		return fmt.Errorf("random network: %w", err)
	}
	s := network.Summarize(tree)
	log.Printf("Random network: %d leaves, %d networks, depth %d", s.Leaves, s.Networks, s.Depth)

	return inv.Append(tree)
}

func export(cfg *config.Config, inv *network.Collection, omega float64) error {
	var pts []sweep.Point
	scale, err := cfg.SweepScale()
	if err != nil {
		return err
	}
	if cfg.Sweep.Enabled {
		last, err := inv.At(inv.Len())
		if err != nil {
			return err
		}
		if pts, err = sweep.Sweep(last, cfg.Sweep.Range, cfg.Sweep.Points, scale); err != nil {
			return fmt.Errorf("sweep: %w", err)
		}
		if res, err := sweep.Resonance(last, pts); err == nil {
			log.Printf("Resonance near %g rad/s, |Z| = %g", res.Omega, res.Magnitude)
		} else {
			log.Printf("No resonance: %v", err)
		}
	}

	if cfg.Output.XLSX != "" {
		if err = writeWorkbook(cfg.Output.XLSX, inv, omega, pts); err != nil {
			return err
		}
		log.Printf("Workbook written: %s", cfg.Output.XLSX)
	}
	if cfg.Output.Plot != "" && len(pts) > 0 {
		err = report.SaveBode(cfg.Output.Plot, "Random network", pts, scale)
		switch {
		case errors.Is(err, report.ErrNothingToPlot):
			log.Printf("Bode plot skipped: %v", err)
		case err != nil:
			return fmt.Errorf("plot: %w", err)
		default:
			log.Printf("Bode plot written: %s", cfg.Output.Plot)
		}
	}

	return nil
}

func writeWorkbook(path string, inv *network.Collection, omega float64, pts []sweep.Point) error {
	wb, err := report.NewWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	if err = wb.AddInventory(inv, omega); err != nil {
		return err
	}
	if len(pts) > 0 {
		if err = wb.AddSweep("Sweep", pts); err != nil {
			return err
		}
	}
	if err = wb.SaveAs(path); err != nil {
		return fmt.Errorf("workbook: %w", err)
	}

	return nil
}
