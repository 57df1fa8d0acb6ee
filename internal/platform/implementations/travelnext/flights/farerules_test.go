package flights_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/flights"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

func TestParseBaggageAllowance(t *testing.T) {
	tests := []struct {
		code         string
		expectedType string
		expected     schema.BaggageAllowance
	}{
		{
			code: "SB",
			expected: schema.BaggageAllowance{
				Type:        "standard",
				Description: "Standard Baggage Allowance",
				Details:     "As per airline standard baggage policy",
			},
		},
		{
			code: "2P",
			expected: schema.BaggageAllowance{
				Type:        "piece",
				Description: "2 Piece(s)",
				Details:     "Maximum 2 piece(s) of baggage allowed",
				Pieces:      2,
			},
		},
		{
			code: "30K",
			expected: schema.BaggageAllowance{
				Type:        "weight",
				Description: "30 Kg",
				Details:     "Maximum 30 kilograms of baggage allowed",
				WeightKg:    30,
			},
		},
		{
			code: "XYZ",
			expected: schema.BaggageAllowance{
				Type:        "other",
				Description: "XYZ",
				Details:     "Baggage allowance: XYZ",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			assert.Equal(t, test.expected, flights.ParseBaggageAllowance(test.code))
		})
	}
}

func TestSummarizeRulesText(t *testing.T) {
	t.Run("should match known patterns", func(t *testing.T) {
		summary := flights.SummarizeRulesText("Refund permitted. Cancellation requires a fee. Advance purchase needed.")

		assert.Contains(t, summary, "Refund conditions apply")
		assert.Contains(t, summary, "Cancellation conditions apply")
		assert.Contains(t, summary, "Advance purchase requirements")
	})

	t.Run("should limit to five points", func(t *testing.T) {
		text := "no day/time restrictions no eligibility requirements capacity limitations " +
			"fares are subject to change refund change cancellation"

		assert.Len(t, flights.SummarizeRulesText(text), 5)
	})

	t.Run("should fall back to first sentence", func(t *testing.T) {
		summary := flights.SummarizeRulesText("Ticket valid for one year from issue. Other text.")

		assert.Equal(t, []string{"Ticket valid for one year from issue"}, summary)
	})

	t.Run("should handle empty text", func(t *testing.T) {
		assert.Empty(t, flights.SummarizeRulesText(""))
	})
}

func TestCategorizeFareRule(t *testing.T) {
	tests := []struct {
		category string
		expected string
	}{
		{"PASSENGER ELIGIBILITY", "eligibility"},
		{"SEASONAL FARES", "travel_dates"},
		{"ADVANCE PURCHASE", "booking_requirements"},
		{"MINIMUM STAY", "stay_requirements"},
		{"REISSUE RULES", "changes"},
		{"REFUNDS AND VOIDS", "cancellation"},
		{"BAGGAGE ALLOWANCE", "baggage"},
		{"PENALTY CHARGES", "penalties"},
		{"MISCELLANEOUS", "general"},
		{"", "general"},
	}

	for _, test := range tests {
		t.Run(test.category, func(t *testing.T) {
			assert.Equal(t, test.expected, flights.CategorizeFareRule(test.category))
		})
	}
}

func TestGetFareRules(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	params := schema.FlightFareRulesParams{
		SessionID:      "sess-123",
		FareSourceCode: "FSC-OUT-1",
	}

	t.Run("should normalize rules for both directions", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/fare_rules", r.RequestURI)

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"FareRules1_1Response": {
					"FareRules1_1Result": {
						"BaggageInfos": [
							{"BaggageInfo": {"Departure": "DXB", "Arrival": "LHR", "FlightNo": "101", "Baggage": "30K"}}
						],
						"FareRules": [
							{"FareRule": {"Airline": "EK", "CityPair": "DXBLHR", "Category": "PENALTIES", "Rules": "Cancellation fee applies."}}
						]
					},
					"FareRules1_1ResultInbound": {
						"BaggageInfos": [
							{"BaggageInfo": {"Departure": "LHR", "Arrival": "DXB", "FlightNo": "102", "Baggage": "SB"}}
						],
						"FareRules": [
							{"FareRule": {"Airline": "EK", "CityPair": "LHRDXB", "Category": "REFUNDS", "Rules": "Refund permitted before departure."}}
						]
					}
				}
			}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetFareRules(context.Background(), params, &log)

		assert.Nil(t, err)
		assert.True(t, response.Success)
		assert.True(t, response.FareRules.IsRoundTrip)
		assert.Equal(t, "outbound", response.FareRules.Outbound.Direction)
		assert.Equal(t, "inbound", response.FareRules.Inbound.Direction)

		outboundRule := response.FareRules.Outbound.FareRules[0]
		assert.Equal(t, "penalties", outboundRule.CategoryType)
		assert.Equal(t, []string{"Cancellation conditions apply"}, outboundRule.RulesSummary)

		baggage := response.FareRules.Outbound.BaggageInfo[0]
		assert.Equal(t, "weight", baggage.BaggageDescription.Type)
		assert.Equal(t, 30, baggage.BaggageDescription.WeightKg)

		summary := response.Summary
		assert.True(t, summary.HasOutboundRules)
		assert.True(t, summary.HasInboundRules)
		assert.Equal(t, 2, summary.TotalBaggageSegments)
		assert.Equal(t, 2, summary.TotalRuleCategories)
		assert.Contains(t, summary.RuleCategories, "penalties")
		assert.Contains(t, summary.RuleCategories, "cancellation")
	})

	t.Run("should fail when rules are missing", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		}))
		defer testServer.Close()

		redisClient, _ := testRedisClient()
		service := flights.New(redisClient, testConfiguration(testServer.URL))

		response, err := service.GetFareRules(context.Background(), params, &log)

		assert.Nil(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "No fare rules response data", *response.Error)
	})
}
