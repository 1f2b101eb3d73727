/*
Package domain contains the core models shared by the geomass pipeline.

It defines the geometry block located inside a quantum-chemistry output, the
format-preserving representation of a rewritten line, and the element mass
table used for the rewrite. This package is kept pure and free of I/O.

# Key Entities

  - Block: The contiguous run of coordinate rows found after the header marker.
  - Line: A rewritten row split into leading whitespace, token and remainder.
  - MassTable: An immutable symbol to integer mass mapping.
  - Hooks: Optional callbacks fired while a run progresses.
*/
package domain
