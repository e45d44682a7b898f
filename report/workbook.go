// SPDX-License-Identifier: MIT
// Package: acnet/report
//
// workbook.go - XLSX export of inventories and sweeps.
//
// Layout:
//   - "Summary":   ω, entry count, leaf/network totals.
//   - "Inventory": one row per top-level node (No, Kind, Value, Unit, Re, Im, |Z|, Phase, Status).
//   - one sheet per sweep: Omega, Re, Im, |Z|, Phase, Status.

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/acnet/network"
	"github.com/katalvlaran/acnet/sweep"
)

const (
	summarySheet   = "Summary"
	inventorySheet = "Inventory"
	maxSheetName   = 31
	statusOK       = "ok"
)

// ErrSheetExists indicates a sweep sheet name collides with an existing sheet.
var ErrSheetExists = errors.New("report: sheet already exists")

// Workbook accumulates sheets before writing them out.
// It is not safe for concurrent use.
type Workbook struct {
	f      *excelize.File
	sheets map[string]bool
}

// NewWorkbook returns an empty workbook holding only the Summary sheet.
func NewWorkbook() (*Workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("NewWorkbook: %w", err)
	}

	return &Workbook{f: f, sheets: map[string]bool{summarySheet: true}}, nil
}

// AddInventory writes the Summary and Inventory sheets for inv at omega.
// Degenerate entries are listed with their error text as Status.
func (w *Workbook) AddInventory(inv *network.Collection, omega float64) error {
	nodes := inv.Nodes()
	var leaves, networks int
	for _, n := range nodes {
		s := network.Summarize(n)
		leaves += s.Leaves
		networks += s.Networks
	}

	summary := [][]interface{}{
		{"Key", "Value"},
		{"Omega [rad/s]", omega},
		{"Entries", len(nodes)},
		{"Leaves", leaves},
		{"Networks", networks},
	}
	if err := w.writeRows(summarySheet, summary); err != nil {
		return fmt.Errorf("AddInventory: %w", err)
	}

	if err := w.newSheet(inventorySheet); err != nil {
		return fmt.Errorf("AddInventory: %w", err)
	}
	rows := make([][]interface{}, 0, len(nodes)+1)
	rows = append(rows, []interface{}{"No", "Kind", "Value", "Unit", "Re(Z)", "Im(Z)", "|Z|", "Phase", "Status"})
	for i, n := range nodes {
		l := n.Label()
		var value interface{} = ""
		if c, ok := n.(network.Component); ok {
			value = c.Value()
		}
		p := sweep.At(n, []float64{omega})[0]
		if !p.Valid() {
			rows = append(rows, []interface{}{i + 1, l.Name, value, l.Unit, "", "", "", "", p.Err.Error()})
			continue
		}
		rows = append(rows, []interface{}{i + 1, l.Name, value, l.Unit,
			real(p.Z), imag(p.Z), p.Magnitude, p.Phase, statusOK})
	}
	if err := w.writeRows(inventorySheet, rows); err != nil {
		return fmt.Errorf("AddInventory: %w", err)
	}

	return nil
}

// AddSweep writes pts to a new sheet called name (trimmed to 31 runes).
func (w *Workbook) AddSweep(name string, pts []sweep.Point) error {
	name = sheetName(name)
	if err := w.newSheet(name); err != nil {
		return fmt.Errorf("AddSweep(%q): %w", name, err)
	}

	rows := make([][]interface{}, 0, len(pts)+1)
	rows = append(rows, []interface{}{"Omega [rad/s]", "Re(Z)", "Im(Z)", "|Z|", "Phase [rad]", "Status"})
	for _, p := range pts {
		if !p.Valid() {
			rows = append(rows, []interface{}{p.Omega, "", "", "", "", p.Err.Error()})
			continue
		}
		rows = append(rows, []interface{}{p.Omega, real(p.Z), imag(p.Z), p.Magnitude, p.Phase, statusOK})
	}
	if err := w.writeRows(name, rows); err != nil {
		return fmt.Errorf("AddSweep(%q): %w", name, err)
	}

	return nil
}

// SaveAs writes the workbook to path.
func (w *Workbook) SaveAs(path string) error {
	return w.f.SaveAs(path)
}

// WriteTo writes the workbook as XLSX bytes to out.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.f.WriteTo(out)
}

// Close releases the workbook's temporary resources.
func (w *Workbook) Close() error {
	return w.f.Close()
}

func (w *Workbook) newSheet(name string) error {
	if w.sheets[name] {
		return fmt.Errorf("%q: %w", name, ErrSheetExists)
	}
	if _, err := w.f.NewSheet(name); err != nil {
		return err
	}
	w.sheets[name] = true

	return nil
}

func (w *Workbook) writeRows(sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err = w.f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}

	return nil
}

// sheetName strips characters Excel rejects and trims to the length limit.
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = "Sweep"
	}
	if rs := []rune(name); len(rs) > maxSheetName {
		name = string(rs[:maxSheetName])
	}

	return name
}
