// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CommandTypst is the only command the CLI accepts.
const CommandTypst = "typst"

// Request holds the inputs of a single typst-report invocation.
type Request struct {
	// Command is the command selector (always CommandTypst).
	Command string `json:"command" yaml:"command"`

	// QuestionPath is the survey question file handed to the generator. Required.
	QuestionPath string `json:"question_path" yaml:"question_path"`

	// ReportPath is the report source converted by pandoc. Required.
	ReportPath string `json:"report_path" yaml:"report_path"`

	// OutputDir is the base directory for intermediate output (default "dist").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// TemplatePath is the typst template consumed by the generator
	// (default <cwd>/template/template.typ).
	TemplatePath string `json:"template_path" yaml:"template_path"`
}

// Config holds toolchain settings resolved once at startup from flags,
// environment and config file.
type Config struct {
	// GenPath is the generator source directory containing Cargo.toml
	// (default "./typst_gen/", overridden by TYPST_GEN_PATH).
	GenPath string `json:"gen_path" yaml:"gen_path" mapstructure:"gen_path"`

	// GenBinary is the name of the generator executable under target/release.
	GenBinary string `json:"gen_binary" yaml:"gen_binary" mapstructure:"gen_binary"`

	// PandocBin is the document converter executable.
	PandocBin string `json:"pandoc" yaml:"pandoc" mapstructure:"pandoc"`

	// CargoBin is the executable used to build the generator.
	CargoBin string `json:"cargo" yaml:"cargo" mapstructure:"cargo"`
}
