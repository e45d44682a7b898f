// Package acnet models passive AC networks: resistors, capacitors,
// inductors and series/parallel compositions of them, evaluated as complex
// impedance at an angular frequency ω.
//
// Layout:
//
//	network/  - closed node set, impedance, Collection, shared Frequency, Describe/List
//	builder/  - seeded random inventories and canonical constructors (Ladder, RandomNetwork)
//	sweep/    - impedance over linear/log frequency grids, resonance search
//	report/   - XLSX workbook (excelize) and Bode plot (gonum/plot)
//	config/   - YAML run configuration for the CLI
//	cmd/acnet - non-interactive command line front end
//	examples/ - runnable walkthroughs
//
// Quick start:
//
//	r, _ := network.NewResistor(10)
//	c, _ := network.NewCapacitor(1e-6)
//	z, err := network.NewSeries(r, c).Impedance(1000) // 10-1000i
//
// Undefined impedances (a capacitor at ω = 0, a shorted parallel branch, an
// empty parallel) are reported as network.ErrDegenerateImpedance, never as
// NaN or Inf.
package acnet
