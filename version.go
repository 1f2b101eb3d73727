package geomass

// Version is the release of the geomass module.
var Version = "0.3.0"
