package flights

// Exported for tests.
var (
	FormatDuration        = formatDuration
	ParseBaggageAllowance = parseBaggageAllowance
	SummarizeRulesText    = summarizeRulesText
	CategorizeFareRule    = categorizeFareRule
	DirectionFromBehavior = directionFromBehavior
	SeatCategory          = seatCategory
	CategorizeBookingNote = categorizeBookingNote
)
