package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"gaops/internal/ga"
)

// Config is the root configuration structure
type Config struct {
	Seed      int64           `yaml:"seed"`
	Crossover CrossoverConfig `yaml:"crossover"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Logging   LogConfig       `yaml:"logging"`
}

// CrossoverConfig selects the crossover operator
type CrossoverConfig struct {
	Strategy string `yaml:"strategy"` // uniform|single_point|two_point
}

// MutationConfig selects the mutation operator and its parameters
type MutationConfig struct {
	Strategy string        `yaml:"strategy"` // bit_flip|creep
	BitFlip  BitFlipConfig `yaml:"bit_flip"`
	Creep    CreepConfig   `yaml:"creep"`
}

// BitFlipConfig defines bit-flip mutation parameters
type BitFlipConfig struct {
	Rate float64 `yaml:"rate"`
}

// CreepConfig defines creep mutation parameters
type CreepConfig struct {
	Step           int     `yaml:"step"`
	Rate           float64 `yaml:"rate"`
	Modulus        int     `yaml:"modulus"`
	Min            int     `yaml:"min"`
	Max            int     `yaml:"max"`
	PreserveLength bool    `yaml:"preserve_length"`
}

// LogConfig defines operator trace output
type LogConfig struct {
	CSVPath  string `yaml:"csv_path"`
	JSONPath string `yaml:"json_path"`
}

// Load reads a YAML config file and returns a validated Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML bytes, applies defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with every field at its default
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Crossover.Strategy == "" {
		cfg.Crossover.Strategy = ga.OpUniform
	}
	if cfg.Mutation.Strategy == "" {
		cfg.Mutation.Strategy = ga.OpBitFlip
	}
	if cfg.Mutation.BitFlip.Rate == 0 {
		cfg.Mutation.BitFlip.Rate = ga.DefaultBitFlipRate
	}
	if cfg.Mutation.Creep.Step == 0 {
		cfg.Mutation.Creep.Step = ga.DefaultCreepStep
	}
	if cfg.Mutation.Creep.Rate == 0 {
		cfg.Mutation.Creep.Rate = ga.DefaultCreepRate
	}
	if cfg.Mutation.Creep.Modulus == 0 {
		cfg.Mutation.Creep.Modulus = ga.DefaultCreepMod
	}
	if cfg.Mutation.Creep.Max == 0 {
		cfg.Mutation.Creep.Max = ga.DefaultCreepMax
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/operators.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/operators.jsonl"
	}
}

// Validate checks operator names and parameter ranges
func (c *Config) Validate() error {
	var errs []error

	if _, err := ga.Crossover[int](c.Crossover.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := ga.Mutation[int](c.Mutation.Strategy, c.MutationParams()); err != nil {
		errs = append(errs, err)
	}
	if r := c.Mutation.BitFlip.Rate; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("mutation.bit_flip.rate %v outside [0, 1]", r))
	}

	creep := c.Mutation.Creep
	if creep.Rate < 0 || creep.Rate > 1 {
		errs = append(errs, fmt.Errorf("mutation.creep.rate %v outside [0, 1]", creep.Rate))
	}
	if creep.Step < 0 {
		errs = append(errs, fmt.Errorf("mutation.creep.step %d is negative", creep.Step))
	}
	if creep.Modulus < 0 {
		errs = append(errs, fmt.Errorf("mutation.creep.modulus %d is negative", creep.Modulus))
	}
	if creep.Min > creep.Max {
		errs = append(errs, fmt.Errorf("mutation.creep bounds [%d, %d] are empty", creep.Min, creep.Max))
	}

	return errors.Join(errs...)
}

// NewRand returns a random source seeded from the config
func (c *Config) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}

// CreepOptions converts the creep section into operator options
func (c *Config) CreepOptions() ga.CreepOptions {
	creep := c.Mutation.Creep
	return ga.CreepOptions{
		Step:           creep.Step,
		Rate:           creep.Rate,
		Modulus:        creep.Modulus,
		Min:            creep.Min,
		Max:            creep.Max,
		PreserveLength: creep.PreserveLength,
	}
}

// MutationParams collects the parameters of every mutation operator
func (c *Config) MutationParams() ga.MutationParams {
	return ga.MutationParams{
		BitFlipRate: c.Mutation.BitFlip.Rate,
		Creep:       c.CreepOptions(),
	}
}

// CrossoverOperator resolves the configured crossover for integer genes
func (c *Config) CrossoverOperator() (ga.CrossoverFunc[int], error) {
	return ga.Crossover[int](c.Crossover.Strategy)
}

// MutationOperator resolves the configured mutation for integer genes
func (c *Config) MutationOperator() (ga.MutationFunc[int], error) {
	return ga.Mutation[int](c.Mutation.Strategy, c.MutationParams())
}
