// Package report turns inventories and sweeps into artefacts for humans:
// an XLSX workbook built with excelize and a two-panel Bode plot built with
// gonum/plot (PNG or SVG).
//
// Entry points:
//
//	NewWorkbook / AddInventory / AddSweep / SaveAs  - spreadsheet export
//	BodePlots / WriteBode / SaveBode                - |Z| and phase vs ω
//
// Errors:
//
//	ErrSheetExists       - a sweep sheet name is already taken.
//	ErrNothingToPlot     - every sweep point is degenerate.
//	ErrUnsupportedFormat - image format other than png or svg.
package report
