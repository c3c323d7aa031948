package components

// Tone selects the color of a badge.
type Tone string

const (
	ToneGood    Tone = "good"
	ToneWarn    Tone = "warn"
	ToneBad     Tone = "bad"
	ToneInfo    Tone = "info"
	ToneNeutral Tone = "neutral"
)
