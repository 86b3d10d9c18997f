// Package chksum computes SEGUID checksums for biological sequences.
//
// Every variant hashes a canonical message with SHA-1 and renders the
// digest as unpadded Base64 behind a "<kind>:" prefix. The message does
// not depend on letter case, on which strand of a duplex was given first
// or on where a circular molecule was opened:
//
//	seguid    uppercase sequence, standard Base64
//	slseguid  uppercase sequence
//	scseguid  uppercase sequence at its minimum rotation
//	dlseguid  smaller orientation of the duplex drawn as two padded lines
//	dcseguid  smaller minimum rotation of either strand, then dlseguid
//
// Inputs are validated, never repaired: a symbol outside the table or a
// duplex that does not anneal is an error. The functions are pure and safe
// for concurrent use.
package chksum
