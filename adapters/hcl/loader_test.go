package hcl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modcheck/adapters/hcl"
	"modcheck/core/conflict"
	"modcheck/core/types"
)

const testBundle = `
platform "mk7-gti" {
  engine = "turbo_i4"
}

piggyback = "piggyback-tuner"

system "powertrain" {
  name = "Powertrain"
}

system "fueling" {
  name = "Fueling"
}

node "powertrain.boost_level" {
  name    = "Boost Level"
  unit    = "psi"
  engines = ["turbo_i4"]
}

node "fueling.injector_capacity" {
  name = "Injector Capacity"
  unit = "cc/min"
}

edge {
  from        = "powertrain.boost_level"
  to          = "fueling.injector_capacity"
  type        = "requires"
  description = "More boost needs more fuel."
  threshold = {
    boost_increase_psi = 4
  }
}

upgrade "big-turbo" {
  name     = "Big Turbo Kit"
  category = "engine"
  tier     = "race"
  improves = ["powertrain.boost_level"]
  stresses = ["fueling.injector_capacity"]
  requires = ["fuel-injectors"]
}

upgrade "fuel-injectors" {
  name     = "Fuel Injectors"
  category = "fueling"
  tier     = "sport"
  improves = ["fueling.injector_capacity"]
}

upgrade "ecu-tune" {
  name     = "ECU Tune"
  category = "tuning"
  tier     = "street"
}

upgrade "stage1-tune" {
  name     = "Stage 1 Tune"
  category = "tuning"
  tier     = "sport"
}

upgrade "piggyback-tuner" {
  name     = "Piggyback Tuner"
  category = "tuning"
  tier     = "street"
}

rule "turbo-needs-injectors" {
  name       = "Turbo Needs Injectors"
  kind       = "missing_support"
  trigger    = ["big-turbo"]
  supporting = ["fuel-injectors"]
  recommends = ["fuel-injectors"]
  severity   = "safety"
  message    = "A larger turbo outruns the stock injectors."
}

group "fuel-delivery" {
  members = ["fuel-injectors", "ecu-tune"]
}

tune "ecu-tune" {
  priority = 1
}

tune "stage1-tune" {
  priority   = 2
  calibrated = ["fuel-injectors"]
}
`

func writeBundle(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "bundle.hcl"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestLoadDir(t *testing.T) {
	dir := writeBundle(t, testBundle)

	bundle, err := hcl.NewLoader().LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "mk7-gti", bundle.Platform)
	assert.Equal(t, "turbo_i4", bundle.Engine)
	assert.Len(t, bundle.Systems, 2)
	assert.Len(t, bundle.Nodes, 2)
	assert.Len(t, bundle.Edges, 1)
	assert.Len(t, bundle.Upgrades, 5)
	assert.Len(t, bundle.Rules, 1)
	assert.Equal(t, types.UpgradeKey("piggyback-tuner"), bundle.Piggyback)

	require.Contains(t, bundle.Effects, types.UpgradeKey("big-turbo"))
	assert.Equal(t, []types.NodeKey{"powertrain.boost_level"}, bundle.Effects["big-turbo"].Improves)

	require.Len(t, bundle.Edges[0].Threshold, 1)
	assert.Equal(t, "4", bundle.Edges[0].Threshold["boost_increase_psi"].String())
}

func TestBundleBuildsWorkingEngine(t *testing.T) {
	dir := writeBundle(t, testBundle)

	bundle, err := hcl.NewLoader().LoadDir(dir)
	require.NoError(t, err)
	eng, err := bundle.Build()
	require.NoError(t, err)

	// the bundle's rule fires
	advisories := eng.Evaluate(types.NewSelection("big-turbo"))
	require.Len(t, advisories, 1)
	assert.Equal(t, "turbo-needs-injectors", advisories[0].RuleID)

	// the bundle's tune hierarchy holds
	c := eng.CheckConflict("stage1-tune", types.NewSelection("ecu-tune"))
	require.NotNil(t, c)
	assert.Equal(t, conflict.TypeUpgrade, c.Type)

	// the bundle's calibration overlap holds
	c = eng.CheckConflict("fuel-injectors", types.NewSelection("stage1-tune"))
	require.NotNil(t, c)
	assert.Equal(t, conflict.TypeOverlap, c.Type)
	assert.False(t, c.Hard)
}

func TestLoadPlatformFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "mk7-gti.hcl"), []byte(testBundle), 0644)
	require.NoError(t, err)

	bundle, err := hcl.NewLoader().LoadPlatform(dir, "mk7-gti")
	require.NoError(t, err)
	assert.Equal(t, "mk7-gti", bundle.Platform)

	_, err = hcl.NewLoader().LoadPlatform(dir, "e46-m3")
	assert.Error(t, err)
}

func TestLoadDirRejectsBadHCL(t *testing.T) {
	dir := writeBundle(t, `system "powertrain" {`)

	_, err := hcl.NewLoader().LoadDir(dir)
	assert.Error(t, err)
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := hcl.NewLoader().LoadDir(t.TempDir())
	assert.Error(t, err)
}

func TestBuildRejectsInconsistentBundle(t *testing.T) {
	bad := testBundle + `
edge {
  from = "powertrain.boost_level"
  to   = "chassis.rigidity"
  type = "stresses"
}
`
	dir := writeBundle(t, bad)
	bundle, err := hcl.NewLoader().LoadDir(dir)
	require.NoError(t, err)

	_, err = bundle.Build()
	assert.Error(t, err)
}

func TestLoadEngineFallsBackToBuiltin(t *testing.T) {
	eng, err := hcl.LoadEngine("", "")
	require.NoError(t, err)
	assert.NotNil(t, eng.Catalog())
}
