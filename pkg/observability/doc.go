/*
Package observability provides run metrics for the geomass pipeline.

Metrics are fed through domain.Hooks, so the pipeline itself never imports
Prometheus. Because geomass is a short-lived batch command, metrics are
exported by writing a node-exporter textfile rather than serving HTTP.
*/
package observability
