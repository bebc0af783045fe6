// Package hcl loads modcheck data bundles written in HCL. A bundle
// replaces the built-in data set with a per-platform taxonomy, relation
// graph, effect map, rule set, catalog, and conflict policy.
package hcl

import (
	"modcheck/core/catalog"
	"modcheck/core/conflict"
	"modcheck/core/effect"
	"modcheck/core/engine"
	"modcheck/core/relation"
	"modcheck/core/rules"
	"modcheck/core/taxonomy"
	"modcheck/core/types"
	"modcheck/internal/errors"
)

// LoadEngine assembles an engine from data settings. An empty dir
// selects the built-in data set.
func LoadEngine(dir, platform string) (*engine.Engine, error) {
	if dir == "" {
		return engine.Default(), nil
	}
	loader := NewLoader()
	var (
		bundle *Bundle
		err    error
	)
	if platform != "" {
		bundle, err = loader.LoadPlatform(dir, platform)
	} else {
		bundle, err = loader.LoadDir(dir)
	}
	if err != nil {
		return nil, err
	}
	return bundle.Build()
}

// Bundle is the raw content of a parsed data bundle before validation
type Bundle struct {
	// Platform names the vehicle platform the bundle describes
	Platform string

	// Engine is the platform's engine archetype
	Engine string

	Systems  []taxonomy.System
	Nodes    []taxonomy.Node
	Edges    []relation.Edge
	Upgrades []catalog.Entry
	Effects  map[types.UpgradeKey]effect.Set
	Rules    []rules.Rule

	Groups    map[string][]types.UpgradeKey
	Tunes     map[types.UpgradeKey]conflict.Tune
	Piggyback types.UpgradeKey
}

func newBundle() *Bundle {
	return &Bundle{
		Effects: make(map[types.UpgradeKey]effect.Set),
		Groups:  make(map[string][]types.UpgradeKey),
		Tunes:   make(map[types.UpgradeKey]conflict.Tune),
	}
}

// Build validates the bundle and assembles an engine from it
func (b *Bundle) Build() (*engine.Engine, error) {
	tax, err := taxonomy.NewStore(b.Systems, b.Nodes)
	if err != nil {
		return nil, errors.Wrap(errors.TypeData, "invalid bundle taxonomy", err)
	}

	graph, err := relation.NewGraph(tax, b.Edges)
	if err != nil {
		return nil, errors.Wrap(errors.TypeData, "invalid bundle edges", err)
	}

	effects, err := effect.NewMap(tax, b.Effects)
	if err != nil {
		return nil, errors.Wrap(errors.TypeData, "invalid bundle effects", err)
	}

	ruleSet, err := rules.NewSet(b.Rules)
	if err != nil {
		return nil, errors.Wrap(errors.TypeData, "invalid bundle rules", err)
	}

	policy, err := conflict.NewPolicy(b.Groups, b.Tunes, b.Piggyback)
	if err != nil {
		return nil, errors.Wrap(errors.TypeData, "invalid bundle conflict policy", err)
	}

	cat := catalog.New()
	for _, entry := range b.Upgrades {
		cat.Register(entry)
	}

	return engine.New(engine.Config{
		Taxonomy: tax,
		Graph:    graph,
		Effects:  effects,
		Rules:    ruleSet,
		Detector: conflict.NewDetector(policy),
		Catalog:  cat,
	})
}
