// Copyright (c) 2025 Mel Bickford.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bgg fetches collections from the BoardGameGeek XML API v2.

A collection fetch is two surfaces: /collection for the item list with
ownership stats and the user's ratings, then /thing in batches for average
weight and the suggested_numplayers poll, which /collection does not
carry. BGG answers 202 while a collection export is queued; the client
retries a bounded number of times and paces every request through a rate
limiter, since BGG throttles unauthenticated clients aggressively.

Poll buckets are reduced at fetch time to the derived fields the rest of
the system needs: a comparable player count (open-ended "4+" labels map to
label+1), a recommendation score, and a not-recommended percentage that is
absent when the bucket has no votes.
*/
package bgg
