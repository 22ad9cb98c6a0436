// Package config manages user-level settings stored at ~/.trellis/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template bundle path, the check-loop limit, and the log level.
package config
