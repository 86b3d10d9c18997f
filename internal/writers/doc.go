// Package writers turns checksum results into serialized outputs.
//
// Each output format is a Func registered under its name; Start runs the
// chosen one on a goroutine fed by a channel so the batch driver never
// waits on presentation. JSON and JSONL go through pkg/api (v1) for a
// stable wire format.
package writers
