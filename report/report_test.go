package report_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/acnet/network"
	"github.com/katalvlaran/acnet/report"
	"github.com/katalvlaran/acnet/sweep"
)

func fixture(t *testing.T) *network.Collection {
	t.Helper()
	r, w := network.NewResistor(10)
	require.Nil(t, w)
	c, w := network.NewCapacitor(1e-6)
	require.Nil(t, w)

	return network.NewCollection(r, c, network.NewSeries(r.Clone(), c.Clone()))
}

func rlc(t *testing.T) network.Node {
	t.Helper()
	r, _ := network.NewResistor(100)
	l, _ := network.NewInductor(0.1)
	c, _ := network.NewCapacitor(1e-5)

	return network.NewSeries(r, l, c)
}

func TestWorkbook_InventoryAndSweep(t *testing.T) {
	wb, err := report.NewWorkbook()
	require.NoError(t, err)
	defer wb.Close()

	require.NoError(t, wb.AddInventory(fixture(t), 1000))
	pts, err := sweep.Sweep(rlc(t), sweep.Range{Min: 0, Max: 2000}, 3, sweep.Linear)
	require.NoError(t, err)
	require.NoError(t, wb.AddSweep("series/RLC", pts))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, wb.SaveAs(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Inventory", "series_RLC"}, f.GetSheetList())

	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "No", rows[0][0])
	assert.Equal(t, "Resistor", rows[1][1])
	assert.Equal(t, "Ohms", rows[1][3])
	assert.Equal(t, "ok", rows[1][8])
	assert.Equal(t, "Series Circuit", rows[3][1])

	entries, err := f.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "3", entries)

	rows, err = f.GetRows("series_RLC")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	// ω = 0 makes the capacitor degenerate; the row carries the error.
	assert.Contains(t, rows[1][5], "degenerate")
	assert.Equal(t, "ok", rows[2][5])
}

func TestWorkbook_DuplicateSheet(t *testing.T) {
	wb, err := report.NewWorkbook()
	require.NoError(t, err)
	defer wb.Close()

	pts := sweep.At(rlc(t), []float64{1, 10})
	require.NoError(t, wb.AddSweep("a", pts))
	assert.ErrorIs(t, wb.AddSweep("a", pts), report.ErrSheetExists)
	assert.ErrorIs(t, wb.AddSweep("Summary", pts), report.ErrSheetExists)
}

func TestWorkbook_WriteTo(t *testing.T) {
	wb, err := report.NewWorkbook()
	require.NoError(t, err)
	defer wb.Close()
	require.NoError(t, wb.AddInventory(fixture(t), 0))

	var buf bytes.Buffer
	n, err := wb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestWriteBode_Formats(t *testing.T) {
	pts, err := sweep.Sweep(rlc(t), sweep.Range{Min: 10, Max: 1e5}, 50, sweep.Log)
	require.NoError(t, err)

	var png bytes.Buffer
	require.NoError(t, report.WriteBode(&png, "png", "RLC", pts, sweep.Log))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, report.WriteBode(&svg, "SVG", "RLC", pts, sweep.Log))
	assert.True(t, strings.Contains(svg.String(), "<svg"))

	assert.ErrorIs(t, report.WriteBode(&svg, "gif", "RLC", pts, sweep.Log), report.ErrUnsupportedFormat)
}

func TestBodePlots_Errors(t *testing.T) {
	c, _ := network.NewCapacitor(1e-6)
	pts := sweep.At(c, []float64{0, 0})
	_, _, err := report.BodePlots("C", pts, sweep.Linear)
	assert.ErrorIs(t, err, report.ErrNothingToPlot)

	mag, phase, err := report.BodePlots("C", sweep.At(c, []float64{0, 1, 2}), sweep.Linear)
	require.NoError(t, err)
	assert.Equal(t, "C", mag.Title.Text)
	assert.Equal(t, "Phase [deg]", phase.Y.Label.Text)
}

func TestSaveBode(t *testing.T) {
	pts := sweep.At(rlc(t), []float64{100, 1000, 10000})
	dir := t.TempDir()

	require.NoError(t, report.SaveBode(filepath.Join(dir, "b.png"), "RLC", pts, sweep.Log))
	require.FileExists(t, filepath.Join(dir, "b.png"))

	err := report.SaveBode(filepath.Join(dir, "b.jpg"), "RLC", pts, sweep.Log)
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
	assert.NoFileExists(t, filepath.Join(dir, "b.jpg"))
}
