// Package intercomcli provides common CLI utilities for intercom
// command-line tools: topology configuration, terminal dashboard rendering,
// output formatting, and request-file loading.
//
// This package includes:
//   - Configuration management (pkg/intercom topology + defaults)
//   - Terminal dashboard rendering (Frame/Section/Styles/VUBar, via lipgloss)
//   - Output formatting (JSON, YAML)
//   - Request file loading (YAML/JSON, file or stdin) for gain-matrix updates
//
// Configuration is stored in ~/.intercom/<app>/ directory.
//
// Example usage:
//
//	cfg, err := intercomcli.LoadConfigWithPath("tower", "")
//
//	intercomcli.Output(result, intercomcli.OutputOptions{
//	    Format: intercomcli.FormatJSON,
//	    File:   outputPath,
//	})
package intercomcli
