package sprite

// Package sprite resolves team logos: it probes the filesystem cache under
// the configured directory and falls back to downloading the SVG from the
// league image host. Cache hits are permanent; files are never re-validated.
