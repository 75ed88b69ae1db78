package ui

// Package ui contains the Fyne-based desktop user interface: the three-state
// search screen (loading, loaded, errored), the dark theme, and the settings
// dialog. The UI is the sole writer of screen state; search completions are
// applied via fyne.Do on the render thread.
