package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// rewritePlan is the --rewrite-plan file shape: a named sequence of
// registered rewrites, plus how many leading columns to protect.
type rewritePlan struct {
	Rules []string `yaml:"rules"`
	Fixed int      `yaml:"fixed"`
}

func loadRewritePlan(path string) (*rewritePlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan rewritePlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}
