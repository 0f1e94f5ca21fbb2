// Package lifecycle defines the contracts for the phases of the
// food-surveys database lifecycle: schema management and dataset
// imports. Implementations live in internal/io* packages.
package lifecycle
