// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the client and the server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] and [GetClientConfig].
package config
