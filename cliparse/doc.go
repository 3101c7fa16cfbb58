// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cliparse resolves server configuration from CLI flags with
// environment-variable fallback, loading an optional .env file first.
package cliparse
