/*
Package geomass extracts the Cartesian geometry block from quantum-chemistry
output (ORCA style) and rewrites each row's element symbol into an integer
mass, keeping every other byte of the row intact.

# Concept

The block starts two lines after the "CARTESIAN COORDINATES (ANGSTROEM)"
header and ends at the first blank line. Each row's first token is looked up
in a MassTable; the remainder of the row, spacing included, is copied
verbatim. Column alignment is not re-padded.

# Usage

	ext := geomass.New(geomass.WithStrict(true))
	path, err := ext.Run(ctx, "molecule.out", "results")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(path) // results/geometry.txt

Unknown symbols are logged and passed through in permissive mode; with
WithStrict they abort the run with a *domain.UnrecognizedSymbolError.
Sources and sinks are pluggable through WithSource and WithSink (see the
pkg/adapters packages).
*/
package geomass
