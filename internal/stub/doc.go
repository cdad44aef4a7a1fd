// Package stub is a scripted stand-in for the recommendation backend.
//
// It serves a fixed catalogue and replays a fixed progress script. No
// ranking logic is involved: scores are part of the catalogue. A few query
// keywords switch the script into failure modes so every client error path
// can be reproduced by hand:
//
//	fail     the backend reports an error
//	nothing  the recommendation has no items
//	garbled  one malformed frame precedes the result
//	cutoff   the stream ends without a terminal event
//	busy     the request is refused with 503
package stub
