package search

// Package search implements the core search pipeline: directory fetch, uniform
// random selection, sprite resolution, and Team assembly. It owns the
// generation counter that keeps late results of superseded searches from
// clobbering newer ones.
