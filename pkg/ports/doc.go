/*
Package ports defines the driven ports (interfaces) for the geomass pipeline.

These interfaces decouple the extraction logic from where lines come from and
where they go, so the same pipeline runs against the filesystem or memory.

# Key Interfaces

  - LineSource: Loads an artifact as an ordered sequence of lines.
  - LineSink: Persists fully-formed lines to a named artifact.
*/
package ports
