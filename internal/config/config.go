// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// DefaultConfigFilePath is read when no configuration file is requested
// explicitly. Its absence is not an error.
const DefaultConfigFilePath = "/config/runtime.yaml"

// LoadDocument assembles the sparse configuration document from all
// sources, later sources overriding earlier ones leaf by leaf:
//  1. Configuration file (path from -c/-config, SCRAPER_CONFIG or
//     [DefaultConfigFilePath])
//  2. Environment variables
//  3. Command-line flags
//
// args are the command-line arguments without the program name.
func LoadDocument(args []string) (*Document, error) {
	flags, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	envs, err := parseEnv()
	if err != nil {
		return nil, err
	}

	path, required := configFilePath(envs, flags)

	return newDocumentBuilder().
		withFile(path, required).
		withSource(envs).
		withSource(flags).
		build()
}

// GetRuntimeConfiguration loads the document from all sources and resolves
// it. Any error is meant to abort process startup.
func GetRuntimeConfiguration(args []string) (RuntimeConfiguration, error) {
	doc, err := LoadDocument(args)
	if err != nil {
		return RuntimeConfiguration{}, err
	}
	return Resolve(doc)
}

func configFilePath(envs *envDocument, flags *flagDocument) (string, bool) {
	if flags.configPath != "" {
		return flags.configPath, true
	}
	if envs.ConfigPath != nil && *envs.ConfigPath != "" {
		return *envs.ConfigPath, true
	}
	return DefaultConfigFilePath, false
}
