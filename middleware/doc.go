// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides request logging with per-request IDs, JSON
// response helpers, CORS, and client IP extraction.
package middleware
