package flights

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
	"github.com/tripyverse/travelnext-hub/internal/tools/slowlog"
)

type fareRulesPayload struct {
	SessionID             string `json:"session_id"`
	FareSourceCode        string `json:"fare_source_code"`
	FareSourceCodeInbound string `json:"fare_source_code_inbound,omitempty"`
}

func (s *service) GetFareRules(
	ctx context.Context,
	params schema.FlightFareRulesParams,
	logger *zerolog.Logger,
) (schema.FlightFareRulesResponse, error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start("flights:fare-rules")
	defer slowLogger.Stop("flights:fare-rules")

	errorsBucket := schema.NewErrorsBucket()
	requestsBucket := schema.NewSupplierRequestsBucket()

	response := schema.FlightFareRulesResponse{
		Diagnostics: schema.Diagnostics{
			Errors:           errorsBucket.Errors(),
			SupplierRequests: requestsBucket.SupplierRequests(),
		},
	}

	payload := fareRulesPayload{
		SessionID:             params.SessionID,
		FareSourceCode:        params.FareSourceCode,
		FareSourceCodeInbound: params.FareSourceCodeInbound,
	}

	decoded, supplierError := s.requestSupplier(
		ctx,
		schema.FlightFareRulesRequest,
		"/fare_rules",
		payload,
		s.transactionalTimeout(),
		logger,
		&requestsBucket,
	)
	if supplierError != nil {
		errorsBucket.AddError(*supplierError)
		response.Result = schema.FailedResult(supplierError.Message)

		return response, nil
	}

	if message, code, found := supplierErrorsIn(decoded); found {
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResultWithCode(message, code)

		return response, nil
	}

	rulesResponse, ok := extracting.HasMap(decoded, "FareRules1_1Response")
	if !ok || len(rulesResponse) == 0 {
		message := "No fare rules response data"
		errorsBucket.AddError(schema.NewSupplierError(message))
		response.Result = schema.FailedResult(message)

		return response, nil
	}

	data := schema.FareRulesData{
		Outbound: normalizeFareRuleSet(extracting.Map(rulesResponse, "FareRules1_1Result"), "outbound"),
	}

	if inboundResult, hasInbound := extracting.HasMap(rulesResponse, "FareRules1_1ResultInbound"); hasInbound && len(inboundResult) > 0 {
		inbound := normalizeFareRuleSet(inboundResult, "inbound")
		data.Inbound = &inbound
		data.IsRoundTrip = true
	}

	summary := summarizeFareRules(data)

	response.Result = schema.OkResult()
	response.FareRules = &data
	response.Summary = &summary

	return response, nil
}

func normalizeFareRuleSet(rulesResult map[string]interface{}, direction string) schema.FareRuleSet {
	normalized := schema.FareRuleSet{
		Direction:   direction,
		BaggageInfo: []schema.BaggageRule{},
		FareRules:   []schema.FareRule{},
	}

	for _, wrapper := range extracting.Maps(rulesResult, "BaggageInfos") {
		baggageInfo := extracting.Map(wrapper, "BaggageInfo")
		allowance := extracting.String(baggageInfo, "Baggage", "")

		normalized.BaggageInfo = append(normalized.BaggageInfo, schema.BaggageRule{
			DepartureAirport:   extracting.String(baggageInfo, "Departure", ""),
			ArrivalAirport:     extracting.String(baggageInfo, "Arrival", ""),
			FlightNumber:       extracting.StringFromAny(baggageInfo, "FlightNo", ""),
			BaggageAllowance:   allowance,
			BaggageDescription: parseBaggageAllowance(allowance),
		})
	}

	for _, wrapper := range extracting.Maps(rulesResult, "FareRules") {
		fareRule := extracting.Map(wrapper, "FareRule")
		rulesText := extracting.String(fareRule, "Rules", "")
		category := extracting.String(fareRule, "Category", "")

		normalized.FareRules = append(normalized.FareRules, schema.FareRule{
			AirlineCode:  extracting.String(fareRule, "Airline", ""),
			CityPair:     extracting.String(fareRule, "CityPair", ""),
			Category:     category,
			RulesText:    rulesText,
			RulesSummary: summarizeRulesText(rulesText),
			CategoryType: categorizeFareRule(category),
		})
	}

	return normalized
}

// parseBaggageAllowance decodes supplier baggage codes. "SB" is the airline
// standard, a "P" suffix counts pieces and a "K" suffix is a weight in kg.
func parseBaggageAllowance(baggageCode string) schema.BaggageAllowance {
	code := strings.ToUpper(strings.TrimSpace(baggageCode))

	switch {
	case code == "SB":
		return schema.BaggageAllowance{
			Type:        "standard",
			Description: "Standard Baggage Allowance",
			Details:     "As per airline standard baggage policy",
		}
	case strings.HasSuffix(code, "P"):
		count := strings.TrimSuffix(code, "P")
		pieces, err := strconv.Atoi(count)
		if err != nil {
			pieces = 1
		}

		return schema.BaggageAllowance{
			Type:        "piece",
			Description: fmt.Sprintf("%s Piece(s)", count),
			Details:     fmt.Sprintf("Maximum %s piece(s) of baggage allowed", count),
			Pieces:      pieces,
		}
	case strings.HasSuffix(code, "K"):
		weight := strings.TrimSuffix(code, "K")
		kilograms, err := strconv.Atoi(weight)
		if err != nil {
			kilograms = 0
		}

		return schema.BaggageAllowance{
			Type:        "weight",
			Description: fmt.Sprintf("%s Kg", weight),
			Details:     fmt.Sprintf("Maximum %s kilograms of baggage allowed", weight),
			WeightKg:    kilograms,
		}
	default:
		return schema.BaggageAllowance{
			Type:        "other",
			Description: code,
			Details:     "Baggage allowance: " + code,
		}
	}
}

var ruleSummaryPatterns = []struct {
	pattern string
	summary string
}{
	{"no day/time restrictions", "No day/time travel restrictions"},
	{"no eligibility requirements", "No special eligibility requirements"},
	{"capacity limitations", "Subject to seat availability"},
	{"fares are subject to change", "Fares subject to change without notice"},
	{"refund", "Refund conditions apply"},
	{"change", "Change conditions apply"},
	{"cancellation", "Cancellation conditions apply"},
	{"advance purchase", "Advance purchase requirements"},
	{"minimum stay", "Minimum stay requirements"},
	{"maximum stay", "Maximum stay requirements"},
}

// summarizeRulesText reduces a free-text rule to at most five key points,
// falling back to the first sentence when no known pattern matches.
func summarizeRulesText(rulesText string) []string {
	if rulesText == "" {
		return []string{}
	}

	points := []string{}

	rulesLower := strings.ToLower(rulesText)
	for _, entry := range ruleSummaryPatterns {
		if strings.Contains(rulesLower, entry.pattern) {
			points = append(points, entry.summary)
		}
	}

	if len(points) == 0 {
		firstSentence := strings.SplitN(rulesText, ".", 2)[0]
		if len(firstSentence) > 100 {
			firstSentence = firstSentence[:100]
		}

		if trimmed := strings.TrimSpace(firstSentence); trimmed != "" {
			points = append(points, trimmed)
		}
	}

	if len(points) > 5 {
		points = points[:5]
	}

	return points
}

var fareRuleCategories = []struct {
	keywords []string
	category string
}{
	{[]string{"eligibility", "passenger"}, "eligibility"},
	{[]string{"day", "time", "seasonal"}, "travel_dates"},
	{[]string{"advance", "purchase", "payment"}, "booking_requirements"},
	{[]string{"stay", "duration", "minimum", "maximum"}, "stay_requirements"},
	{[]string{"change", "modification", "reissue"}, "changes"},
	{[]string{"refund", "cancel", "void"}, "cancellation"},
	{[]string{"baggage", "luggage"}, "baggage"},
	{[]string{"penalty", "fee", "charge"}, "penalties"},
}

func categorizeFareRule(category string) string {
	if category == "" {
		return "general"
	}

	categoryLower := strings.ToLower(category)

	for _, entry := range fareRuleCategories {
		for _, keyword := range entry.keywords {
			if strings.Contains(categoryLower, keyword) {
				return entry.category
			}
		}
	}

	return "general"
}

func summarizeFareRules(data schema.FareRulesData) schema.FareRulesSummary {
	summary := schema.FareRulesSummary{
		HasOutboundRules: true,
		RuleCategories:   []string{},
		KeyRestrictions:  []string{},
	}

	seenCategories := map[string]bool{}
	seenRestrictions := map[string]bool{}

	collect := func(set schema.FareRuleSet) {
		summary.TotalBaggageSegments += len(set.BaggageInfo)
		summary.TotalRuleCategories += len(set.FareRules)

		for _, rule := range set.FareRules {
			if rule.CategoryType != "" && !seenCategories[rule.CategoryType] {
				seenCategories[rule.CategoryType] = true
				summary.RuleCategories = append(summary.RuleCategories, rule.CategoryType)
			}

			for _, restriction := range rule.RulesSummary {
				if !seenRestrictions[restriction] {
					seenRestrictions[restriction] = true
					summary.KeyRestrictions = append(summary.KeyRestrictions, restriction)
				}
			}
		}
	}

	collect(data.Outbound)

	if data.Inbound != nil {
		summary.HasInboundRules = true
		collect(*data.Inbound)
	}

	if len(summary.KeyRestrictions) > 10 {
		summary.KeyRestrictions = summary.KeyRestrictions[:10]
	}

	return summary
}
