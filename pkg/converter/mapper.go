// Package converter converts between splits and Beancount postings.
package converter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AccountMapping maps a ledger account UID to a Beancount account name.
type AccountMapping struct {
	UID       string `yaml:"uid"`
	Beancount string `yaml:"beancount"`
	Type      string `yaml:"type"`
}

// AccountMappingConfig represents the complete account mapping configuration.
type AccountMappingConfig struct {
	Accounts []AccountMapping `yaml:"accounts"`
}

// Mapper maps account UIDs to Beancount account names and back.
type Mapper struct {
	uidToName map[string]string
	nameToUID map[string]string
	types     map[string]string
}

// NewMapper creates a new Mapper from a YAML configuration file.
func NewMapper(configPath string) (*Mapper, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseMapper(data)
}

// ParseMapper creates a Mapper from YAML content.
func ParseMapper(data []byte) (*Mapper, error) {
	var config AccountMappingConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	mapper := &Mapper{
		uidToName: make(map[string]string, len(config.Accounts)),
		nameToUID: make(map[string]string, len(config.Accounts)),
		types:     make(map[string]string, len(config.Accounts)),
	}

	for i, mapping := range config.Accounts {
		if mapping.UID == "" || mapping.Beancount == "" {
			return nil, fmt.Errorf("account mapping %d: uid and beancount are required", i)
		}
		if _, dup := mapper.uidToName[mapping.UID]; dup {
			return nil, fmt.Errorf("account mapping %d: duplicate uid %q", i, mapping.UID)
		}
		if _, dup := mapper.nameToUID[mapping.Beancount]; dup {
			return nil, fmt.Errorf("account mapping %d: duplicate beancount account %q", i, mapping.Beancount)
		}
		mapper.uidToName[mapping.UID] = mapping.Beancount
		mapper.nameToUID[mapping.Beancount] = mapping.UID
		mapper.types[mapping.UID] = mapping.Type
	}

	return mapper, nil
}

// AccountName returns the Beancount account for an account UID, or "" if unmapped.
func (m *Mapper) AccountName(uid string) string {
	return m.uidToName[uid]
}

// AccountUID returns the account UID for a Beancount account, or "" if unmapped.
func (m *Mapper) AccountUID(name string) string {
	return m.nameToUID[name]
}

// AccountType returns the configured account type label.
func (m *Mapper) AccountType(uid string) string {
	return m.types[uid]
}

// HasMapping checks if a mapping exists for an account UID.
func (m *Mapper) HasMapping(uid string) bool {
	_, ok := m.uidToName[uid]
	return ok
}

// GetAllMappings returns a copy of the UID to Beancount account mappings.
func (m *Mapper) GetAllMappings() map[string]string {
	result := make(map[string]string, len(m.uidToName))
	for k, v := range m.uidToName {
		result[k] = v
	}
	return result
}
