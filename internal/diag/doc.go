// Package diag defines diagnostic codes, severities and collection
// primitives shared by the detection, classification and tree phases.
package diag
