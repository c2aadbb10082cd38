package profile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pixelsort/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// fileRoot is the top-level shape of a profile file.
type fileRoot struct {
	LogLevel   *string      `hcl:"log_level,optional"`
	LogFormat  *string      `hcl:"log_format,optional"`
	Mode       *string      `hcl:"mode,optional"`
	AutoOrient *bool        `hcl:"auto_orient,optional"`
	Output     *outputBlock `hcl:"output,block"`
}

type outputBlock struct {
	Name        hcl.Expression `hcl:"name,optional"`
	Compression *string        `hcl:"compression,optional"`
}

// Profile holds the settings read from a profile file. Empty strings and a
// nil AutoOrient mean "not set".
type Profile struct {
	LogLevel    string
	LogFormat   string
	Mode        string
	AutoOrient  *bool
	Compression string

	outputName hcl.Expression
}

// Input describes the decoded input file to the output name template.
type Input struct {
	Dir    string
	Stem   string
	Ext    string
	Format string
}

// Load parses the profile file at path.
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading profile.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Profile loaded.", "mode", p.Mode, "log_level", p.LogLevel, "custom_output_name", p.HasOutputName())
	return p, nil
}

// Parse decodes a profile held in memory. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, diags)
	}

	p, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", filename, err)
	}
	return p, nil
}

func decode(file *hcl.File) (*Profile, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, diags
	}

	p := &Profile{
		LogLevel:   deref(root.LogLevel),
		LogFormat:  deref(root.LogFormat),
		Mode:       deref(root.Mode),
		AutoOrient: root.AutoOrient,
	}
	if root.Output != nil {
		p.Compression = deref(root.Output.Compression)
		p.outputName = root.Output.Name
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// HasOutputName reports whether the profile sets output.name.
func (p *Profile) HasOutputName() bool {
	if p == nil || p.outputName == nil {
		return false
	}
	// gohcl stands in a static null expression for an absent attribute.
	if len(p.outputName.Variables()) == 0 {
		v, diags := p.outputName.Value(nil)
		if !diags.HasErrors() && v.IsNull() {
			return false
		}
	}
	return true
}

// OutputName evaluates output.name for the given input. It returns an empty
// string when the profile does not set one.
func (p *Profile) OutputName(in Input) (string, error) {
	if !p.HasOutputName() {
		return "", nil
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"input": cty.ObjectVal(map[string]cty.Value{
				"dir":    cty.StringVal(in.Dir),
				"stem":   cty.StringVal(in.Stem),
				"ext":    cty.StringVal(in.Ext),
				"format": cty.StringVal(in.Format),
			}),
		},
	}

	val, diags := p.outputName.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate output name: %w", diags)
	}
	if val.IsNull() {
		return "", nil
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("output name must be a string: %w", err)
	}
	if !val.IsWhollyKnown() {
		return "", errors.New("output name is not known")
	}
	name := val.AsString()
	if name == "" {
		return "", errors.New("output name evaluated to an empty string")
	}
	return name, nil
}
