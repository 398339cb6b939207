//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "zenofuel-api"
	ConsumerName = "supplier-portal"

	StatePendingFuelOrder   = "a pending fuel order 1 addressed to the supplier"
	StateNoShopOrders       = "the supplier has no shop orders"
	StateForeignFuelOrder   = "fuel order 1 is addressed to another supplier"
	StateMissingFuelOrder   = "no fuel order with id 999"
	StateSupplierRegistered = "the supplier is registered"
)

const (
	ExistingOrderID int64 = 1
	MissingOrderID  int64 = 999

	SupplierEmail      = "fuel@lanka-petro.lk"
	OtherSupplierEmail = "bulk@ceylon-energy.lk"
	SupplierPassword   = "pact-supplier-pass"

	// TokenSecret signs the tokens minted for contract runs on both sides.
	TokenSecret = "pact-contract-secret-0123456789ab"
)

// ExampleAcceptPayload provides stable test data for the accept interaction.
func ExampleAcceptPayload() map[string]any {
	return map[string]any{
		"quantity":       500,
		"wholesalePrice": 10,
	}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the supplier portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
