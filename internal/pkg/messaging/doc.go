// Package messaging provides a broker-agnostic API for publishing and
// consuming messages.
//
// Business code relies on the Publisher and Consumer interfaces only; the
// concrete driver is selected by configuration. NATS is the deployed
// backend.
package messaging
