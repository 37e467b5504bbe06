package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-petr/money-guard/internal/domain"
)

func txs(dates ...string) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(dates))
	for _, d := range dates {
		out = append(out, domain.Transaction{TransactionDate: d})
	}

	return out
}

func TestExtractYears(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input []domain.Transaction
		want  []string
	}{
		{
			name:  "DistinctSorted",
			input: txs("2022-05-01", "2022-11-03", "2021-01-01"),
			want:  []string{"2021", "2022"},
		},
		{
			name:  "Empty",
			input: []domain.Transaction{},
			want:  []string{},
		},
		{
			name:  "Nil",
			input: nil,
			want:  []string{},
		},
		{
			name:  "UnorderedInput",
			input: txs("2024-01-01", "2019-12-31", "2024-06-30", "2020-02-29", "2019-01-01"),
			want:  []string{"2019", "2020", "2024"},
		},
		{
			name:  "TimestampDates",
			input: txs("2023-01-01T10:00:00Z", "2023-02-01T00:00:00Z"),
			want:  []string{"2023"},
		},
		{
			name:  "ShortDate",
			input: txs("202", "2021-01-01"),
			want:  []string{"202", "2021"},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractYears(tc.input)
			if got == nil {
				t.Fatal("ExtractYears() = nil, want non nil slice")
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ExtractYears() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractYearsIdempotent(t *testing.T) {
	t.Parallel()

	input := txs("2022-05-01", "2020-11-03", "2021-01-01", "2020-01-01")

	first := ExtractYears(input)
	second := ExtractYears(input)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ExtractYears() is not idempotent (-first +second):\n%s", diff)
	}

	if input[0].TransactionDate != "2022-05-01" {
		t.Errorf("ExtractYears() modified its input: %v", input)
	}
}
