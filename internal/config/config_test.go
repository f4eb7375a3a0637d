package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaops/internal/ga"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(1337), cfg.Seed)
	assert.Equal(t, ga.OpUniform, cfg.Crossover.Strategy)
	assert.Equal(t, ga.OpBitFlip, cfg.Mutation.Strategy)
	assert.Equal(t, ga.DefaultBitFlipRate, cfg.Mutation.BitFlip.Rate)
	assert.Equal(t, ga.DefaultCreepOptions(), cfg.CreepOptions())
	assert.Equal(t, "runs/operators.csv", cfg.Logging.CSVPath)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	data := []byte(`
seed: 7
crossover:
  strategy: two_point
mutation:
  strategy: creep
  creep:
    step: 2
    rate: 1
    max: 50
    preserve_length: true
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, ga.CreepOptions{
		Step:           2,
		Rate:           1,
		Modulus:        ga.DefaultCreepMod,
		Min:            0,
		Max:            50,
		PreserveLength: true,
	}, cfg.CreepOptions())

	cross, err := cfg.CrossoverOperator()
	require.NoError(t, err)
	c1, c2, err := cross([]int{1, 1, 1, 1}, []int{0, 0, 0, 0}, cfg.NewRand())
	require.NoError(t, err)
	assert.Len(t, c1, 4)
	assert.Len(t, c2, 4)

	mut, err := cfg.MutationOperator()
	require.NoError(t, err)
	out := mut([]int{3, 4, 5}, cfg.NewRand())
	assert.Len(t, out, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("seed: [1, 2"))
	assert.Error(t, err)
}

func TestParse_UnknownOperators(t *testing.T) {
	_, err := Parse([]byte("crossover:\n  strategy: cycle\nmutation:\n  strategy: swap\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ga.ErrUnknownOperator)
	assert.Contains(t, err.Error(), "cycle")
	assert.Contains(t, err.Error(), "swap")
}

func TestParse_InvalidRanges(t *testing.T) {
	cases := map[string]string{
		"bit flip rate": "mutation:\n  bit_flip:\n    rate: 1.5\n",
		"creep rate":    "mutation:\n  creep:\n    rate: -0.2\n",
		"creep step":    "mutation:\n  creep:\n    step: -3\n",
		"modulus":       "mutation:\n  creep:\n    modulus: -1\n",
		"bounds":        "mutation:\n  creep:\n    min: 500\n",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestNewRand_Deterministic(t *testing.T) {
	cfg := Default()
	a, b := cfg.NewRand(), cfg.NewRand()
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "operators.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
