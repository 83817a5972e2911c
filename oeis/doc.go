/*
Package oeis is a client for the On-Line Encyclopedia of Integer Sequences.

A Client fetches entries from an OEIS server in three ways: a brief lookup of
one entry by its A-number (FetchBrief), the full list of terms from an entry's
b-file (FetchFull), and a search for entries containing some terms (Search).
Nothing is cached. Every call is a round-trip to the server.

A Sequence wraps one fetched Record and answers queries about its terms:
Contains, Find, Next, Prev, NthTerm, Subsequence and First. Indexes count from
zero over the terms currently loaded, which are the few dozen listed on the
entry's page until ReplaceWithFull swaps in the b-file. Terms are arbitrary
precision (*big.Int) since most sequences outgrow 64 bits quickly.

Errors are one of *TransportError, *ParseError, *NotFoundError or *IndexError.
Use errors.As to inspect them, or errors.Is with ErrNotFound and ErrIndex.
*/
package oeis
