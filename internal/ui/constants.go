package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 1024
	WindowHeight float32 = 768
)

// Layout sizing
const (
	LogoSize float32 = 220
)

// Text sizes
const (
	HeadingTextSize float32 = 40
	NameTextSize    float32 = 30
	NumberTextSize  float32 = 20
)

// Text fragments
const (
	AppName = "Puck Scout"

	TextSearching     = "Searching for Team..."
	TextWentWrong     = "Whoops! Something went wrong..."
	TextKeepSearching = "Keep searching!"
	TextTryAgain      = "Try again"

	SubtitleLoading = "Loading"
	SubtitleErrored = "Error occured"
)
