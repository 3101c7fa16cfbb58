// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists fetched collections and saved share views.

The schema is deliberately portable between sqlite (the default, also used
in-memory by tests) and postgres; Store rebinds $N placeholders to ? for
sqlite. Collections are replaced wholesale per refresh — one row per
username plus its items in fetch order, with poll entries stored as a JSON
column rather than a fourth table, since the pipeline only ever reads them
back as a unit.
*/
package db
