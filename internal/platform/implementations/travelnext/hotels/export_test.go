package hotels

// Exported for tests.
var (
	BuildOccupancy           = buildOccupancy
	SearchMethodCount        = searchMethodCount
	FormatRatingSummary      = formatRatingSummary
	DescriptionPreview       = descriptionPreview
	CategorizeFacilities     = categorizeFacilities
	FormatCancellationPolicy = formatCancellationPolicy
	FormatRefundSummary      = formatRefundSummary
)
