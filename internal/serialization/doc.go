// Package serialization implements the .twl snapshot format for two-layer
// networks.
//
// A snapshot is a small container made of a fixed binary header, a JSON
// header and a data section of little-endian float64 values:
//
//	Format Structure:
//	  [0x00-0x03: Magic "TWLN"]
//	  [0x04-0x07: Format version (uint32 LE)]
//	  [0x08-0x0B: Flags (uint32 LE)]
//	  [0x0C-0x0F: Reserved]
//	  [0x10-0x17: JSON header size (uint64 LE)]
//	  [0x18-0x1F: Data size (uint64 LE)]
//	  [0x20-0x3F: SHA-256 checksum of the data section]
//	  [JSON header, zero padded to a 64-byte boundary]
//	  [Tensor data: float64 LE, in header order]
//
// The JSON header carries the hyperparameters, per-layer shape metadata and
// the offset of every tensor inside the data section. Readers validate the
// magic bytes, version, tensor names, offsets and the checksum before any
// value is handed back.
//
// The checksum covers the data section only. The JSON header is not
// authenticated, so every header field is bounds checked instead: shapes are
// limited to MaxElements values and tensor regions must lie inside the data
// section.
//
// Example usage:
//
//	snap := &serialization.Snapshot{Header: header, Tensors: tensors}
//	if err := serialization.WriteFile("model.twl", snap); err != nil {
//	    log.Fatal(err)
//	}
//
//	snap, err := serialization.ReadFile("model.twl", serialization.ReaderOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
