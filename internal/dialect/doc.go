// Package dialect decides, once per file, which diagram grammar the input is
// written in: classic bracketed PlantUML or the Salt tree form.
//
// The decision is intentionally global: the first decisive signal in the
// file wins and every later line is classified under that single dialect,
// which keeps parsing deterministic and testable in isolation.
package dialect
