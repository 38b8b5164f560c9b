package extractor_test

import (
	"testing"

	"github.com/robklaiss/foteam/internal/extractor"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "Empty", text: "", expected: []string{}},
		{name: "NoDigits", text: "FINISH LINE", expected: []string{}},
		{name: "MixedRuns", text: "Bib 042 finish 7 at 1234567", expected: []string{"042", "7"}},
		{name: "SixDigitsKept", text: "123456", expected: []string{"123456"}},
		{name: "SevenDigitsDropped", text: "1234567", expected: []string{}},
		{name: "LeadingZerosKept", text: "000000 and 0", expected: []string{"000000", "0"}},
		{name: "OrderPreserved", text: "900\n12\n345", expected: []string{"900", "12", "345"}},
		{name: "DuplicatesKept", text: "12 12 12", expected: []string{"12", "12", "12"}},
		{name: "AdjacentLetters", text: "A123B 45-67", expected: []string{"123", "45", "67"}},
		{name: "LetterPrefix", text: "Bib042", expected: []string{"042"}},
		{name: "Underscore", text: "12_34", expected: []string{"12", "34"}},
		{name: "NonASCIIDigitsIgnored", text: "١٢٣ 88", expected: []string{"88"}},
		{name: "TrailingRun", text: "runner #2024", expected: []string{"2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, extractor.Extract(tt.text))
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	text := "MARATHON 2024 Bib 5531 / 0042 - 99999999"
	first := extractor.Extract(text)
	second := extractor.Extract(text)
	require.Equal(t, first, second)
	require.Equal(t, []string{"2024", "5531", "0042"}, first)
}

func TestExtract_OnlyValidTokens(t *testing.T) {
	inputs := []string{
		"1 22 333 4444 55555 666666 7777777",
		"x9y88z777w6666v55555u444444t3333333",
		"\t\n 12\r\n",
	}
	for _, in := range inputs {
		for _, n := range extractor.Extract(in) {
			require.True(t, extractor.IsBibNumber(n), "unexpected token %q from %q", n, in)
		}
	}
}

func TestIsBibNumber(t *testing.T) {
	require.True(t, extractor.IsBibNumber("1"))
	require.True(t, extractor.IsBibNumber("000000"))
	require.False(t, extractor.IsBibNumber(""))
	require.False(t, extractor.IsBibNumber("1234567"))
	require.False(t, extractor.IsBibNumber("12a"))
}
