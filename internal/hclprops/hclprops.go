package hclprops

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/lambdaport/internal/ctxlog"
	"github.com/vk/lambdaport/internal/properties"
)

// Parse reads an HCL body of top-level attributes from src and returns a
// property bag with every attribute stored under prefix+name. Values must
// be literals convertible to string (strings, numbers, bools); numbers and
// bools are stored in their canonical string form. filename is used only
// for diagnostics.
func Parse(ctx context.Context, filename string, src []byte, prefix string) (properties.Bag, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read attributes from %s: %w", filename, diags)
	}

	bag := properties.Bag{}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute %q: %w", name, diags)
		}
		if val.IsNull() {
			return nil, fmt.Errorf("attribute %q: value is null", name)
		}
		strVal, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		key := prefix + name
		logger.Debug("Collected property from HCL body.", "attribute", name, "key", key)
		bag[key] = strVal.AsString()
	}
	return bag, nil
}
