// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router defines the route table using Go 1.22+ method patterns.
package router
