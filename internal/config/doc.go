// Package config manages user-level settings stored at ~/.smartnews/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default recency window and the Discord display name.
package config
