// Package dtmf decodes Dual-Tone Multi-Frequency signalling from a live
// 8-bit mono PCM sample stream in real time.
//
// The pipeline is: a capture source pushes batches of samples into a
// fixed-size Ring; after each batch a Pipeline fans out to eight Goertzel
// workers, one per DTMF tone, which recompute their tone's magnitude over
// the whole ring and update a shared Table; the Table's eight flags are
// merged by DecodeKeypad into at most one pressed key. The package owns no
// global state — every piece of mutable state lives on a constructed
// *Pipeline with a lifetime bounded by Init/Run/Shutdown/Cleanup.
package dtmf
