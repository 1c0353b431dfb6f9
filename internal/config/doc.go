// Package config loads color-mcp settings.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. User file: ~/.config/color-mcp/config.yaml
//  3. Project file: ./.color-mcp/config.yaml
//  4. An explicit file passed with --config
//  5. Environment variables
//
// # File Format
//
//	log_level: debug
//	contrast:
//	  min_ratio: 7
//	  delta: 0.05
//	  step: 0.05
//	terminal:
//	  background: "#1e1e1e"
//	  detect: false
//
// # Environment Variables
//
//   - COLOR_MCP_LOG_LEVEL: debug, info, warn or error
//   - COLOR_MCP_BACKGROUND: background hex color used by adaptation
//   - COLOR_MCP_MIN_RATIO: target contrast ratio
//
// Missing files are skipped; a file that exists but cannot be parsed is an
// error.
package config
