// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

// DefaultPandocBin is the converter executable looked up on PATH.
const DefaultPandocBin = "pandoc"

// Pandoc converts a report source into typst markup. The output format is
// inferred by pandoc from the extension of the output path.
type Pandoc struct {
	bin string
	inv Invoker
}

// NewPandoc returns a converter that runs bin through inv. An empty bin
// falls back to DefaultPandocBin.
func NewPandoc(bin string, inv Invoker) *Pandoc {
	if bin == "" {
		bin = DefaultPandocBin
	}
	return &Pandoc{bin: bin, inv: inv}
}

// PandocArgs returns the command line converting input into output.
func PandocArgs(bin, input, output string) []string {
	return []string{bin, input, "--output", output}
}

// Convert runs pandoc on input and writes output.
func (p *Pandoc) Convert(input, output string) (int, error) {
	return p.inv.Invoke(PandocArgs(p.bin, input, output))
}
