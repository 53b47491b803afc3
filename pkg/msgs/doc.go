// Package msgs defines the messages published by a decoder.
package msgs

// Decoded telemetry is published as Typed envelopes, each carrying either
// a single FieldEvent or a whole Telemetry message.
//
// Producer: mercatord
// Consumer: monitors, dashboards
