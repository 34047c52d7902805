package installer

import "fmt"

// RustupCommand bootstraps a toolchain on Unix-like systems.
const RustupCommand = "curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh"

// CheckToolchain verifies rustc and cargo are reachable before a run starts.
// A missing toolchain is fatal: no partial install work is attempted.
func CheckToolchain() error {
	if !HasCommand("rustc") {
		return fmt.Errorf("rustc not found — install Rust first")
	}
	if !HasCommand("cargo") {
		return fmt.Errorf("cargo not found — install Rust first")
	}
	return nil
}
