package installer

import (
	"bytes"
	"io"
	"os"
	"os/exec"
)

// Installer is the package-manager capability the orchestrator drives.
type Installer interface {
	// Probe reports whether command is reachable on PATH.
	Probe(command string) bool
	// Install attempts one install, returning captured stderr regardless
	// of outcome and a non-nil error on non-zero exit.
	Install(crate string) (string, error)
}

// Cargo installs crates with `cargo install`.
type Cargo struct {
	// Locked adds --locked so crates build against their shipped lockfiles.
	Locked bool
}

// NewCargo returns a Cargo backend.
func NewCargo(locked bool) *Cargo {
	return &Cargo{Locked: locked}
}

// Probe checks PATH for the tool's command.
func (c *Cargo) Probe(command string) bool {
	return HasCommand(command)
}

// Install runs `cargo install <crate>`, buffering stderr for classification.
// Cargo reports build progress on stderr, so nothing is streamed; the buffer
// holds whatever the user needs to see about a failure.
func (c *Cargo) Install(crate string) (string, error) {
	args := []string{"install"}
	if c.Locked {
		args = append(args, "--locked")
	}
	args = append(args, crate)

	cmd := exec.Command("cargo", args...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stderr.String(), err
}

// Uninstall removes a crate's binaries via `cargo uninstall`.
func Uninstall(crate string) error {
	cmd := exec.Command("cargo", "uninstall", crate)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// HasCommand reports whether a binary is on PATH.
func HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
