// Package engine is the facade over the upgrade analysis pipeline. It
// wires the taxonomy, relation graph, effect map, rule set, and conflict
// detector into one entry point and exposes the operations callers use:
// dependency lookup, scenario evaluation, conflict checking, and
// resolution.
package engine

import (
	"go.uber.org/zap"

	"modcheck/core/catalog"
	"modcheck/core/conflict"
	"modcheck/core/effect"
	"modcheck/core/relation"
	"modcheck/core/rules"
	"modcheck/core/taxonomy"
	"modcheck/core/types"
	"modcheck/internal/errors"
	"modcheck/internal/logging"
)

// Config carries the immutable components an engine operates over.
// Taxonomy, Graph, Effects, Rules, and Detector are required. Catalog is
// optional; without it unknown upgrade keys cannot be distinguished from
// known upgrades that simply have no effects.
type Config struct {
	Taxonomy *taxonomy.Store
	Graph    *relation.Graph
	Effects  *effect.Map
	Rules    *rules.Set
	Detector *conflict.Detector
	Catalog  *catalog.Catalog
}

// Engine evaluates upgrade selections against an immutable data set.
// Safe for concurrent use; all operations are read-only.
type Engine struct {
	tax      *taxonomy.Store
	graph    *relation.Graph
	effects  *effect.Map
	rules    *rules.Set
	detector *conflict.Detector
	catalog  *catalog.Catalog
}

// New builds an engine and validates the configuration
func New(cfg Config) (*Engine, error) {
	switch {
	case cfg.Taxonomy == nil:
		return nil, errors.Config("engine requires a taxonomy store")
	case cfg.Graph == nil:
		return nil, errors.Config("engine requires a relation graph")
	case cfg.Effects == nil:
		return nil, errors.Config("engine requires an effect map")
	case cfg.Rules == nil:
		return nil, errors.Config("engine requires a rule set")
	case cfg.Detector == nil:
		return nil, errors.Config("engine requires a conflict detector")
	}

	logging.Debug("engine initialized",
		zap.Int("systems", len(cfg.Taxonomy.Systems())),
		zap.Int("edges", cfg.Graph.Len()),
		zap.Int("rules", cfg.Rules.Len()),
	)

	return &Engine{
		tax:      cfg.Taxonomy,
		graph:    cfg.Graph,
		effects:  cfg.Effects,
		rules:    cfg.Rules,
		detector: cfg.Detector,
		catalog:  cfg.Catalog,
	}, nil
}

// MustNew is New for wiring built-in data; panics on invalid config
func MustNew(cfg Config) *Engine {
	e, err := New(cfg)
	if err != nil {
		panic("engine: " + err.Error())
	}
	return e
}

// Default assembles an engine over the built-in data set
func Default() *Engine {
	tax := taxonomy.Default()
	graph, err := relation.NewGraph(tax, relation.DefaultEdges())
	if err != nil {
		panic("engine: invalid built-in edges: " + err.Error())
	}
	effects, err := effect.NewMap(tax, effect.DefaultEffects())
	if err != nil {
		panic("engine: invalid built-in effects: " + err.Error())
	}
	ruleSet, err := rules.NewSet(rules.DefaultRules())
	if err != nil {
		panic("engine: invalid built-in rules: " + err.Error())
	}
	return MustNew(Config{
		Taxonomy: tax,
		Graph:    graph,
		Effects:  effects,
		Rules:    ruleSet,
		Detector: conflict.Default(),
		Catalog:  catalog.Default(),
	})
}

// Taxonomy exposes the wired taxonomy store
func (e *Engine) Taxonomy() *taxonomy.Store { return e.tax }

// Graph exposes the wired relation graph
func (e *Engine) Graph() *relation.Graph { return e.graph }

// Catalog exposes the wired upgrade catalog, nil when none was configured
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// DependenciesOf returns the effect set of an upgrade. Unknown keys
// produce a not-found error when a catalog is configured; a known
// upgrade without mapped effects returns a zero set.
func (e *Engine) DependenciesOf(upgrade types.UpgradeKey) (effect.Set, error) {
	set, ok := e.effects.Effects(upgrade)
	if ok {
		return set, nil
	}
	if e.catalog != nil && !e.catalog.Has(upgrade) {
		return effect.Set{}, errors.NotFound("upgrade", upgrade.String())
	}
	return effect.Set{}, nil
}

// Evaluate runs every scenario rule against the selection and returns
// the advisories of the live ones, in rule registration order.
func (e *Engine) Evaluate(sel types.Selection) []rules.Advisory {
	return e.rules.Evaluate(sel)
}

// AffectedSystems returns the sorted set of vehicle systems touched by
// any upgrade in the selection
func (e *Engine) AffectedSystems(sel types.Selection) []types.SystemKey {
	return e.effects.AffectedSystems(e.tax, sel)
}

// Summarize resolves an upgrade's effects to display names. Unknown
// upgrades produce a not-found error.
func (e *Engine) Summarize(upgrade types.UpgradeKey) (effect.Summary, error) {
	sum, ok := e.effects.Summarize(e.tax, upgrade)
	if !ok {
		if e.catalog != nil && e.catalog.Has(upgrade) {
			return effect.Summary{}, nil
		}
		return effect.Summary{}, errors.NotFound("upgrade", upgrade.String())
	}
	return sum, nil
}

// CheckConflict decides whether adding candidate to the selection
// conflicts. Nil means the addition is clean.
func (e *Engine) CheckConflict(candidate types.UpgradeKey, sel types.Selection) *conflict.Conflict {
	return e.detector.Check(candidate, sel)
}

// Resolve returns a new selection with the candidate applied, never
// mutating the input
func (e *Engine) Resolve(candidate types.UpgradeKey, sel types.Selection, opts conflict.ResolveOptions) types.Selection {
	return e.detector.Resolve(candidate, sel, opts)
}

// ConflictingUpgrades returns the upgrades that always conflict with the
// given key regardless of selection, sorted
func (e *Engine) ConflictingUpgrades(key types.UpgradeKey) []types.UpgradeKey {
	return e.detector.StaticConflicts(key)
}

// AllConflicts validates a full selection pairwise and returns every
// conflict found, deterministically ordered
func (e *Engine) AllConflicts(sel types.Selection) []conflict.Conflict {
	return e.detector.All(sel)
}
