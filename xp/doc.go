// Package xp implements the path index the pgsgd engine consumes read-only:
// per-path length and step tables, the flattened node-path incidence
// (np_bv/npi_iv/nr_iv), and the pangenome-offset interval tree over path
// ranges.
//
// Construction of a path index from a full pangenome (FASTA/GFA ingestion,
// an on-disk succinct encoding) is out of scope for this module. Build
// constructs an index from an explicit, in-memory list of path step
// sequences, everything the engine or a test needs and nothing more.
package xp
