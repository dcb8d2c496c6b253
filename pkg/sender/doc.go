// Package sender delivers rendered templates as real email.
//
// The Sender interface is intentionally minimal: it accepts a fully
// prepared Email and handles delivery. The resend subpackage ships a
// production adapter; tests use a recording fake.
//
// Test deliveries are the main use case here. The editor renders a
// template with sample values and sends it to the author, which is the
// only reliable way to check layout quirks across mail clients.
package sender
