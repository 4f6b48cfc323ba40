// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

// DefaultGenBinary is the executable name produced by the generator crate.
const DefaultGenBinary = "typst_gen"

// GenerateArgs are the inputs of one generator run.
type GenerateArgs struct {
	QuestionPath string
	ReportPath   string
	TemplatePath string
}

// TypstGen runs a built generator binary.
type TypstGen struct {
	inv Invoker
}

// NewTypstGen returns a generator that runs binaries through inv.
func NewTypstGen(inv Invoker) *TypstGen {
	return &TypstGen{inv: inv}
}

// TypstGenArgs returns the command line running binary with the typst command.
func TypstGenArgs(binary string, a GenerateArgs) []string {
	return []string{
		binary,
		"typst",
		"--question-path", a.QuestionPath,
		"--report-path", a.ReportPath,
		"--template-path", a.TemplatePath,
	}
}

// Generate runs binary against the question file, converted report and template.
func (g *TypstGen) Generate(binary string, a GenerateArgs) (int, error) {
	return g.inv.Invoke(TypstGenArgs(binary, a))
}
