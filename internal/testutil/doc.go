// Package testutil provides helpers for deterministic randomized tests.
package testutil
