package model

// Package model defines domain data structures used across the app: the team
// directory record, the resolved Team result, search screen states, and the
// classified error kind. Structures are designed for direct binding in the UI
// and explicit state transitions.
