package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NetworkConfig holds the validator network description consumed at startup.
// The live port-to-id mapping is rebuilt from UpdateNetwork RPCs; this config
// only seeds node count, ports and the initial partition.
type NetworkConfig struct {
	NumberOfNodes int     `yaml:"number_of_nodes"`
	BasePortPeer  int     `yaml:"base_port_peer"`
	BasePortRPC   int     `yaml:"base_port_rpc"`
	BasePortWS    int     `yaml:"base_port_ws"`
	Partition     [][]int `yaml:"network_partition"`
}

// StrategyConfig is the raw parameter map for one fault policy.
type StrategyConfig struct {
	Params Params `yaml:"params"`
}

func ParseNetworkConfig(cfgPath string) (*NetworkConfig, error) {
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return &NetworkConfig{}, err
	}
	var cfg NetworkConfig
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return &NetworkConfig{}, err
	}
	if cfg.NumberOfNodes < 0 {
		return &NetworkConfig{}, fmt.Errorf("number_of_nodes must be non-negative, got %d", cfg.NumberOfNodes)
	}

	return &cfg, nil
}

func ParseStrategyConfig(cfgPath string) (Params, error) {
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	var cfg StrategyConfig
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Params == nil {
		cfg.Params = Params{}
	}

	return cfg.Params, nil
}
