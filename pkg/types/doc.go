// Package types defines the tracker entities, their create/update payloads,
// list parameters and page envelopes, the error taxonomy shared by the
// storage and API layers, and runtime configuration.
package types
