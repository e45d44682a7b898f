package builder_test

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/acnet/builder"
	"github.com/katalvlaran/acnet/network"
)

// ExampleBuild assembles a series R–L–C from leaf constructors.
func ExampleBuild() {
	rlc, err := builder.Build(network.KindSeries, nil,
		builder.Leaf(network.KindResistor, 50),
		builder.Leaf(network.KindInductor, 0.1),
		builder.Leaf(network.KindCapacitor, 1e-5),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	// Resonance of a series RLC: ω₀ = 1/√(LC) = 1000 rad/s, |Z| = R.
	z, _ := rlc.Impedance(1000)
	fmt.Printf("|Z| = %.3f\n", cmplx.Abs(z))
	// Output: |Z| = 50.000
}

// ExampleLadder renders a two-section RC ladder.
func ExampleLadder() {
	n, _ := builder.BuildNode(builder.Ladder(2, 100, 1e-6))
	fmt.Print(network.Describe(n, 0, false))
	// Output:
	// Series Circuit with elements:
	// -Resistor: 100 Ohms
	// -Parallel Circuit with elements:
	// --Capacitor: 1e-06 F
	// --Series Circuit with elements:
	// ---Resistor: 100 Ohms
	// ---Parallel Circuit with elements:
	// ----Capacitor: 1e-06 F
	// //////////end of circuit/////////////
	// //////////end of circuit/////////////
	// //////////end of circuit/////////////
	// //////////end of circuit/////////////
}
