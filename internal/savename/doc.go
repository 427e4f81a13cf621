// Package savename parses Hollow Knight save file names into structured
// records and formats records back into names. Both directions are exact
// inverses over the naming scheme:
//
//	[__<internal>__]user<tag>[_<version>].dat[.bak<id>]
//
// The scheme has no delimiter that ends the slot tag. "user1.dat" has tag
// "1", but so does "user1.dat.bak3", and "user1.dat.dat" has tag "1.dat".
// The parser therefore grows the tag one rune at a time and stops at the
// first position where the rest of the name, checked by a non-consuming
// look-ahead, is exactly an optional version segment plus the suffix.
//
// Functions here are pure and allocate nothing beyond the returned record;
// concurrent calls need no coordination.
package savename
