// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/coursegridgo/internal/config"
	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
	"github.com/specialistvlad/coursegridgo/internal/fsutil"
)

// ErrNoFiles is returned when none of the given paths holds an .hcl file.
var ErrNoFiles = errors.New("no .hcl files found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{evalCtx: &hcl.EvalContext{Functions: Functions()}}
}

// Load parses every .hcl file found under paths and merges their blocks into
// one model. Field names must be unique across files and exactly one
// vehicle_group may be defined.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	seen := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, l.evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, fb := range root.Fields {
			if prev, dup := seen[fb.Name]; dup {
				return nil, fmt.Errorf("field %q in %s is already defined in %s", fb.Name, file, prev)
			}
			seen[fb.Name] = file
			field, err := l.translateField(ctx, fb, file)
			if err != nil {
				return nil, err
			}
			model.Fields = append(model.Fields, field)
		}
		for _, gb := range root.Groups {
			if model.Group != nil {
				return nil, fmt.Errorf("vehicle_group in %s is already defined in %s", file, model.Group.FilePath)
			}
			group, err := l.translateGroup(gb, file)
			if err != nil {
				return nil, err
			}
			model.Group = group
		}
	}

	logger.Debug("HCL loading complete.", "fields", len(model.Fields), "group", model.Group != nil)
	return model, nil
}
