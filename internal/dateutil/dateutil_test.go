package dateutil_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-tocmarks/internal/dateutil"
)

var fixedTime = time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// TestFormat - Tokens formatted, everything else literal
// ---------------------------------------------------------------------------

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"YYYY-MM-DD", "2025-03-09", false},
		{"DD/MM/YY", "09/03/25", false},
		{"MMMM D, YYYY", "March 9, 2025", false},
		{"MMM D", "Mar 9", false},
		{"M/D", "3/9", false},
		{"[Date:] YYYY", "Date: 2025", false},
		{"[Week 1] YYYY", "Week 1 2025", false},
		{"[Jan 2 15:04 PM Mon] DD", "Jan 2 15:04 PM Mon 09", false},
		{"v1 _2 YYYY", "v1 _2 2025", false},
		{"[", "", true},
		{"", "", true},
		{strings.Repeat("Y", dateutil.MaxFormatLength+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, err := dateutil.Format(tt.format, fixedTime)
			if tt.wantErr {
				if !errors.Is(err, dateutil.ErrInvalidDateFormat) {
					t.Errorf("Format(%q) error = %v, want ErrInvalidDateFormat", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Format(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolve - auto values and passthrough
// ---------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"empty passthrough", "", "", false},
		{"literal passthrough", "March 2024", "March 2024", false},
		{"literal with colon passthrough", "Draft: v2", "Draft: v2", false},
		{"auto", "auto", "2025-03-09", false},
		{"auto uppercase", "AUTO", "2025-03-09", false},
		{"custom format", "auto:DD/MM/YYYY", "09/03/2025", false},
		{"preset", "auto:long", "March 9, 2025", false},
		{"preset case insensitive", "auto:US", "03/09/2025", false},
		{"escaped literal", "auto:[Built] YYYY", "Built 2025", false},
		{"literal with layout digits", "auto:[Week 1] YYYY", "Week 1 2025", false},
		{"empty format", "auto:", "", true},
		{"unclosed bracket", "auto:[YYYY", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := dateutil.Resolve(tt.value, fixedTime)
			if tt.wantErr {
				if !errors.Is(err, dateutil.ErrInvalidDateFormat) {
					t.Errorf("Resolve(%q) error = %v, want ErrInvalidDateFormat", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
