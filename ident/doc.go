// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package ident derives deterministic HMAC-based share slugs for saved
// views.
package ident
