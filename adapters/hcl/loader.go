package hcl

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"modcheck/core/catalog"
	"modcheck/core/conflict"
	"modcheck/core/effect"
	"modcheck/core/relation"
	"modcheck/core/rules"
	"modcheck/core/taxonomy"
	"modcheck/core/types"
	"modcheck/internal/errors"
)

// Loader parses modcheck data bundles from HCL files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new bundle loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

var bundleSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "piggyback"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "platform", LabelNames: []string{"name"}},
		{Type: "system", LabelNames: []string{"key"}},
		{Type: "node", LabelNames: []string{"key"}},
		{Type: "edge"},
		{Type: "upgrade", LabelNames: []string{"key"}},
		{Type: "rule", LabelNames: []string{"id"}},
		{Type: "group", LabelNames: []string{"name"}},
		{Type: "tune", LabelNames: []string{"key"}},
	},
}

// LoadDir parses every .hcl file in a directory into one bundle
func (l *Loader) LoadDir(dir string) (*Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read bundle directory", err)
	}

	bundle := newBundle()
	found := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hcl") {
			continue
		}
		found = true
		if err := l.loadFile(filepath.Join(dir, entry.Name()), bundle); err != nil {
			return nil, err
		}
	}
	if !found {
		return nil, errors.Newf(errors.TypeInput, "no .hcl files in %s", dir)
	}
	return bundle, nil
}

// LoadPlatform loads the bundle for a named platform under dir.
// The bundle lives either in dir/<platform>/ or as dir/<platform>.hcl.
func (l *Loader) LoadPlatform(dir, platform string) (*Bundle, error) {
	sub := filepath.Join(dir, platform)
	if info, err := os.Stat(sub); err == nil && info.IsDir() {
		return l.LoadDir(sub)
	}

	file := filepath.Join(dir, platform+".hcl")
	if _, err := os.Stat(file); err != nil {
		return nil, errors.NotFound("platform bundle", platform)
	}
	bundle := newBundle()
	if err := l.loadFile(file, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (l *Loader) loadFile(path string, bundle *Bundle) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.TypeInput, "failed to read bundle file", err)
	}

	hclFile, diags := l.parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return errors.Newf(errors.TypeParsing, "failed to parse %s: %s", path, diags.Error())
	}

	content, _, contentDiags := hclFile.Body.PartialContent(bundleSchema)
	if contentDiags.HasErrors() {
		return errors.Newf(errors.TypeParsing, "invalid bundle structure in %s: %s", path, contentDiags.Error())
	}

	if attr, ok := content.Attributes["piggyback"]; ok {
		s, err := attrString(attr)
		if err != nil {
			return err
		}
		bundle.Piggyback = types.UpgradeKey(s)
	}

	for _, block := range content.Blocks {
		if err := l.loadBlock(block, bundle); err != nil {
			return errors.Wrapf(errors.TypeParsing, err, "%s at %s", block.Type, block.DefRange.String())
		}
	}
	return nil
}

func (l *Loader) loadBlock(block *hcl.Block, bundle *Bundle) error {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return errors.New(errors.TypeParsing, diags.Error())
	}
	dec := &blockDecoder{attrs: attrs}

	switch block.Type {
	case "platform":
		bundle.Platform = block.Labels[0]
		bundle.Engine = dec.str("engine")

	case "system":
		bundle.Systems = append(bundle.Systems, taxonomy.System{
			Key:         types.SystemKey(block.Labels[0]),
			Name:        dec.str("name"),
			Description: dec.str("description"),
		})

	case "node":
		key := types.NodeKey(block.Labels[0])
		bundle.Nodes = append(bundle.Nodes, taxonomy.Node{
			Key:               key,
			System:            key.System(),
			Name:              dec.str("name"),
			Description:       dec.str("description"),
			Unit:              dec.str("unit"),
			ApplicableEngines: dec.strs("engines"),
		})

	case "edge":
		threshold, err := dec.thresholds("threshold")
		if err != nil {
			return err
		}
		bundle.Edges = append(bundle.Edges, relation.Edge{
			From:        types.NodeKey(dec.str("from")),
			To:          types.NodeKey(dec.str("to")),
			Type:        relation.Type(dec.str("type")),
			Description: dec.str("description"),
			Threshold:   threshold,
		})

	case "upgrade":
		key := types.UpgradeKey(block.Labels[0])
		bundle.Upgrades = append(bundle.Upgrades, catalog.Entry{
			Key:         key,
			Name:        dec.str("name"),
			Description: dec.str("description"),
			Category:    catalog.Category(dec.str("category")),
			Tier:        catalog.ParseTier(dec.str("tier")),
		})
		set := effect.Set{
			Improves:    nodeKeys(dec.strs("improves")),
			Modifies:    nodeKeys(dec.strs("modifies")),
			Stresses:    nodeKeys(dec.strs("stresses")),
			Invalidates: nodeKeys(dec.strs("invalidates")),
			Compromises: nodeKeys(dec.strs("compromises")),
			Requires:    upgradeKeys(dec.strs("requires")),
			Recommends:  upgradeKeys(dec.strs("recommends")),
		}
		if !set.IsZero() {
			bundle.Effects[key] = set
		}

	case "rule":
		bundle.Rules = append(bundle.Rules, rules.Rule{
			ID:         block.Labels[0],
			Name:       dec.str("name"),
			Kind:       rules.Kind(dec.str("kind")),
			Trigger:    upgradeKeys(dec.strs("trigger")),
			Supporting: upgradeKeys(dec.strs("supporting")),
			Companions: upgradeKeys(dec.strs("companions")),
			Recommends: upgradeKeys(dec.strs("recommends")),
			Severity:   types.Severity(dec.str("severity")),
			Message:    dec.str("message"),
		})

	case "group":
		bundle.Groups[block.Labels[0]] = upgradeKeys(dec.strs("members"))

	case "tune":
		bundle.Tunes[types.UpgradeKey(block.Labels[0])] = conflict.Tune{
			Priority:   dec.num("priority"),
			Calibrated: upgradeKeys(dec.strs("calibrated")),
		}
	}

	return dec.err
}

func attrString(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", errors.Newf(errors.TypeParsing, "attribute %q: %s", attr.Name, diags.Error())
	}
	if val.Type() != cty.String {
		return "", errors.Newf(errors.TypeParsing, "attribute %q must be a string", attr.Name)
	}
	return val.AsString(), nil
}

// blockDecoder pulls typed values out of a block's attribute map,
// accumulating the first error instead of returning one per call
type blockDecoder struct {
	attrs hcl.Attributes
	err   error
}

func (d *blockDecoder) value(name string) (cty.Value, bool) {
	attr, ok := d.attrs[name]
	if !ok {
		return cty.NilVal, false
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		d.fail(errors.Newf(errors.TypeParsing, "attribute %q: %s", name, diags.Error()))
		return cty.NilVal, false
	}
	return val, true
}

func (d *blockDecoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *blockDecoder) str(name string) string {
	val, ok := d.value(name)
	if !ok {
		return ""
	}
	if val.Type() != cty.String {
		d.fail(errors.Newf(errors.TypeParsing, "attribute %q must be a string", name))
		return ""
	}
	return val.AsString()
}

func (d *blockDecoder) num(name string) int {
	val, ok := d.value(name)
	if !ok {
		return 0
	}
	if val.Type() != cty.Number {
		d.fail(errors.Newf(errors.TypeParsing, "attribute %q must be a number", name))
		return 0
	}
	n, _ := val.AsBigFloat().Int64()
	return int(n)
}

func (d *blockDecoder) strs(name string) []string {
	val, ok := d.value(name)
	if !ok {
		return nil
	}
	if !val.CanIterateElements() {
		d.fail(errors.Newf(errors.TypeParsing, "attribute %q must be a list of strings", name))
		return nil
	}
	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.String {
			d.fail(errors.Newf(errors.TypeParsing, "attribute %q must contain only strings", name))
			return nil
		}
		out = append(out, elem.AsString())
	}
	return out
}

func (d *blockDecoder) thresholds(name string) (map[string]decimal.Decimal, error) {
	val, ok := d.value(name)
	if !ok {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, errors.Newf(errors.TypeParsing, "attribute %q must be a map of numbers", name)
	}
	out := make(map[string]decimal.Decimal)
	for it := val.ElementIterator(); it.Next(); {
		k, elem := it.Element()
		if k.Type() != cty.String || elem.Type() != cty.Number {
			return nil, errors.Newf(errors.TypeParsing, "attribute %q must map string keys to numbers", name)
		}
		dv, err := decimal.NewFromString(elem.AsBigFloat().Text('f', -1))
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "attribute %q: bad number for %s", name, k.AsString())
		}
		out[k.AsString()] = dv
	}
	return out, nil
}

func nodeKeys(ss []string) []types.NodeKey {
	if len(ss) == 0 {
		return nil
	}
	out := make([]types.NodeKey, len(ss))
	for i, s := range ss {
		out[i] = types.NodeKey(s)
	}
	return out
}

func upgradeKeys(ss []string) []types.UpgradeKey {
	if len(ss) == 0 {
		return nil
	}
	out := make([]types.UpgradeKey, len(ss))
	for i, s := range ss {
		out[i] = types.UpgradeKey(s)
	}
	return out
}
