// Package props manages flat key=value connection-settings files for a
// database instance under test. A PropertySet loads a properties resource,
// layers process-wide overrides on top of it, and can rewrite the resource
// in place; every live set sharing a resource path observes the rewrite
// through a broadcast reload.
// Implements: prd001-property-set.
package props

// Version is the connprops release version, overridable at build time.
var Version = "v0.1.0"
