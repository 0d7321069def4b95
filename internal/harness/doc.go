// Package harness executes demonstration scenarios as contract tests.
//
// A scenario names a set of demos to run, pins their run token, and
// asserts on the resulting transcripts. Scenarios live in YAML files:
//
//	name: animal_and_vehicle
//	description: "What this scenario validates"
//	run_token: "test-run-001"
//	demos:
//	  - move-animal
//	  - use-vehicle
//	assertions:
//	  - type: output_contains
//	    demo: move-animal
//	    line: "Moving with speed: 10"
//	  - type: output_count
//	    demo: use-vehicle
//	    count: 3
//	  - type: output_order
//	    demo: use-vehicle
//	    lines:
//	      - "Driving a truck..."
//	      - "Loading cargo: 1000"
//
// # Assertion Types
//
//   - output_contains: a demo's transcript contains the exact line
//   - output_count: a demo's transcript has exactly N lines
//   - output_order: lines appear in the given order (gaps allowed)
//
// # Schema Validation
//
// Scenario files are validated against an embedded CUE schema before
// execution (see schema.go). Strict YAML decoding additionally rejects
// unknown fields, catching typos like "assertion:" vs "assertions:".
//
// # Deterministic Execution
//
// Scenarios run with a fixed run token and a fresh logical clock per
// demo, so transcripts are byte-identical across runs. RunWithGolden
// locks the canonical transcript JSON down with golden files under
// testdata/golden.
package harness
