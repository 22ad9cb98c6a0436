// Package manifest parses and validates the template bundle's bundle.yaml,
// which names the bundle, carries its semver version, and declares how the
// bundled context server is launched. A bundle without a manifest still
// installs: parsing degrades to built-in defaults so partial bundles work.
package manifest
