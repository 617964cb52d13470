// Package lvpi approximates pi under arbitrary-precision arithmetic with
// four methods and measures how many digits each one gets right.
//
// Methods:
//
//	mc     Monte Carlo sampling of the unit square
//	trap   trapezoid rule on the quarter circle √(1−x²)
//	atan   Machin's formula 16·atan(1/5) − 4·atan(1/239)
//	atan2  a six-term Machin-like formula
//
// Every computation runs under an explicit precision.Context: a fixed
// mantissa width in bits and round-to-nearest-even. Nothing is global.
//
// Layout:
//
//	precision/   Context, exact-operand arithmetic, shared error kinds
//	atan/        arctangent series of 1/b
//	machin/      Machin-like formulas and their composition
//	montecarlo/  seeded unit-square sampler
//	trapezoid/   quarter-circle quadrature
//	native/      float64 counterparts of mc, trap and atan
//	pi/          method names and one-call dispatch
//	digits/      reference expansion and correct-digit scoring
//	sweep/       parameter grids, CSV output and accuracy analysis
//	config/      TOML/YAML configuration with environment overrides
//	cli/         cobra dispatchers behind cmd/pi and cmd/pi-native
//
// Quick start:
//
//	ctx := precision.MustNew(256)
//	x, err := pi.Compute(ctx, pi.Atan, 40)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(ctx.Text(x))
//
// See examples/ for runnable scenarios.
package lvpi
