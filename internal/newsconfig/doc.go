// Package newsconfig loads and validates the news source configuration at
// configs/api_config.json. Source entries declare base URLs, endpoint
// templates, query defaults, and the environment variable holding each
// API key; keys are resolved at load time and never stored in the file.
package newsconfig
