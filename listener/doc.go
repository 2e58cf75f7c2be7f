// Package listener implements the search-event trait §9 calls for: "a
// single trait with empty default methods" replacing the original's
// heterogeneous compile-time listener tuple. Dummy is the zero-cost
// default; YAMLTrace and PosthocTrace supplement the distillation with
// a `source|destination|expand|generate` YAML event stream (no per-node
// close events are emitted), grounded on the original's io/{listener, stream_listener,
// posthoc_listener}.h split between an immediate file-backed writer and
// a buffering variant that replays after the search completes.
package listener
