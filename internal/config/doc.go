// Package config provides configuration loading, merging, validation and
// hot reload for the API server and the web rendering service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] and [GetWebConfig]. Both return
// a [Holder] whose snapshots are safe to read concurrently while a reload
// (SIGHUP or a JSON file change seen by [Watcher]) replaces the value.
package config
