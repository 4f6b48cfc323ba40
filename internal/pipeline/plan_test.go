// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/typst-report/pkg/types"
)

func TestNewPlan(t *testing.T) {
	req := types.Request{
		QuestionPath: "q.json",
		ReportPath:   "r.md",
		OutputDir:    "out",
		TemplatePath: "/work/template/template.typ",
	}
	cfg := types.Config{GenPath: "/custom/path/", GenBinary: "typst_gen"}

	plan := NewPlan(req, cfg)

	assert.Equal(t, "out/pandoc", plan.Mkdir)
	require.Len(t, plan.Steps, 3)
	assert.Equal(t, []string{"pandoc", "r.md", "--output", "out/pandoc/report.typ"}, plan.Steps[0].Argv)
	assert.Equal(t, []string{"cargo", "build", "--release", "--manifest-path", "/custom/path/Cargo.toml"}, plan.Steps[1].Argv)
	assert.Equal(t, "/custom/path/target/release/typst_gen", plan.Steps[2].Argv[0])
}

func TestPlan_YAML(t *testing.T) {
	plan := NewPlan(types.Request{
		QuestionPath: "q.json",
		ReportPath:   "r.md",
		OutputDir:    "dist",
		TemplatePath: "t.typ",
	}, types.Config{GenPath: "./typst_gen/", PandocBin: "pandoc3", CargoBin: "cargo"})

	out, err := plan.YAML()
	require.NoError(t, err)

	var got Plan
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, plan, got)
	assert.Contains(t, string(out), "step: convert")
	assert.Contains(t, string(out), "pandoc3")
}
