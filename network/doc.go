// Package network models passive AC networks (resistors, capacitors,
// inductors and series/parallel compositions of them) and evaluates their
// complex impedance Z = R + jX at an angular frequency ω.
//
// The node set is closed:
//
//	Resistor   Z = (R, 0)
//	Inductor   Z = (0, L·ω)
//	Capacitor  Z = (0, −1/(C·ω))
//	Series     Z = Σ zᵢ
//	Parallel   Z = 1 / Σ(1/zᵢ)
//
// Every Node is exclusively owned by its parent. Clone returns a deep copy,
// so a network assembled from clones never shares a mutable sub-node with
// the inventory it was built from.
//
// Frequency:
//
//	Node.Impedance takes ω explicitly and is pure. For shells that want a
//	single process-wide ω, the package keeps one shared Frequency guarded by
//	a RWMutex (SetFrequency/GetFrequency) and the helpers Impedance,
//	Magnitude and Phase read it at call time. Changing it changes the
//	impedance of every live node immediately.
//
// Errors:
//
//	ErrDegenerateImpedance - division by zero or a non-finite result
//	                         (Capacitor with C·ω = 0, zero-impedance parallel
//	                         branch, empty Parallel, NaN/Inf arithmetic).
//	ErrEmptyNetwork        - Parallel without children (also degenerate).
//	ErrIndexOutOfRange     - Collection selection outside [1, Len].
//	ErrUnknownKind         - factory called with a kind of the wrong class.
//	ErrNilNode             - nil node passed where an owned node is required.
//	*Warning               - non-fatal; negative characteristic clamped to 0.
//	                         errors.Is(w, ErrNegativeValue) holds.
//
// Quick example:
//
//	r, _ := network.NewResistor(10)
//	c, _ := network.NewCapacitor(1e-6)
//	s := network.NewSeries(r, c)
//	z, err := s.Impedance(1000) // (10 - 1000i), nil
package network
