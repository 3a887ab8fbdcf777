// Package rules contains the built-in lint rule catalogue.
//
// The catalogue is closed: eight rules, registered with the default
// registry via init(). Each rule is a pure function of the parsed tree
// and the raw source. Every rule except MD001 has a formatter pass that
// eliminates its violations.
package rules
