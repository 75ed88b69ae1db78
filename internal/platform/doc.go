package platform

// Package platform contains filesystem helpers for the sprite cache:
// deterministic cache paths, existence probes, and verbatim file writes.
