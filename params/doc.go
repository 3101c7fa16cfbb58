// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package params implements the persisted-parameter codec: parsing, clamping,
and serializing numeric ranges and booleans to and from a flat string
key-value store (in practice, a URL query string).

# Round-Trip Law

For any value already inside its domain, decoding its encoding yields the
value back. For any unparsable string, decoding yields the default. No
function in this package ever fails on malformed input.

# Minimal Encoding

Keys whose value equals the default are omitted entirely, keeping shared
URLs short. A point range [n, n] encodes as "n", otherwise "n-m". Booleans
encode as "1"/"0".

# Store

The Store interface (Get/Set/Delete) decouples the codec from any ambient
location. URLStore wraps url.Values for the real query string; tests can
supply anything.
*/
package params
