// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

// DefaultCargoBin is the build executable looked up on PATH.
const DefaultCargoBin = "cargo"

// Cargo builds the generator crate in release mode.
type Cargo struct {
	bin string
	inv Invoker
}

// NewCargo returns a builder that runs bin through inv. An empty bin falls
// back to DefaultCargoBin.
func NewCargo(bin string, inv Invoker) *Cargo {
	if bin == "" {
		bin = DefaultCargoBin
	}
	return &Cargo{bin: bin, inv: inv}
}

// CargoArgs returns the release build command line for manifestPath.
func CargoArgs(bin, manifestPath string) []string {
	return []string{bin, "build", "--release", "--manifest-path", manifestPath}
}

// Build compiles the crate described by manifestPath.
func (c *Cargo) Build(manifestPath string) (int, error) {
	return c.inv.Invoke(CargoArgs(c.bin, manifestPath))
}
