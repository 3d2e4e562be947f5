// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It names the on-disk timetable directory the core opens and the query
// defaults the Service facade applies.
package config
