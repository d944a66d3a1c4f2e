// Package objects implements NCBI's ASN.1-derived sequence object model and
// its XML wire codec.
//
// The package is a typed, in-memory representation of the record and choice
// hierarchy NCBI publishes from Entrez: Seq-entry trees of Bioseq and
// Bioseq-set nodes, their identifiers (Seq-id), locations (Seq-loc),
// descriptors (Seqdesc), instance data (Seq-inst) and citations (Pub).
// It is designed to be:
//   - Complete for the modeled subset (every choice arm present in exports)
//   - Forward-compatible (unknown enum codes survive a round trip verbatim)
//   - Streaming (decode never buffers the document; exports reach gigabytes)
//   - Immutable after decode (a tree is safe for concurrent readers)
//
// # Entry Points
//
// Decode reads a Seq-entry or Bioseq-set document from a byte stream:
//
//	entry, err := objects.Decode(r)
//
// Encode writes a tree back out, guaranteeing that the result decodes to a
// semantically equal tree (whitespace and attribute order may differ):
//
//	err := objects.Encode(w, entry)
//
// Validate runs the structural checks on a programmatically built tree
// without serializing it:
//
//	err := objects.Validate(entry)
//
// # Choices
//
// ASN.1 CHOICE constructs are structs with one exported pointer field per
// arm and exactly one arm populated. Arm() reports the populated arm and
// fails with a *SchemaError when zero or several arms are set.
//
// # Decode Modes
//
// Lenient mode (the default) skips unrecognized child elements so documents
// produced by newer schema revisions still decode; Strict mode turns them
// into *UnknownVariantError. Unknown enumeration codes never fail in either
// mode: the integer wire code is preserved and re-encoded exactly.
package objects
