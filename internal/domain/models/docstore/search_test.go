package docstore

import (
	"testing"
)

func TestSearchOptions_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name           string
		input          SearchOptions
		expectedLimit  int
		expectedOffset int
	}{
		{
			name:           "applies defaults to zero values",
			input:          SearchOptions{Keyword: "invoice"},
			expectedLimit:  DefaultSearchLimit,
			expectedOffset: 0,
		},
		{
			name:           "preserves custom values",
			input:          SearchOptions{Limit: 10, Offset: 30},
			expectedLimit:  10,
			expectedOffset: 30,
		},
		{
			name:           "corrects negative offset",
			input:          SearchOptions{Offset: -5},
			expectedLimit:  DefaultSearchLimit,
			expectedOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.ApplyDefaults()
			if tt.input.Limit != tt.expectedLimit {
				t.Errorf("Limit = %d, want %d", tt.input.Limit, tt.expectedLimit)
			}
			if tt.input.Offset != tt.expectedOffset {
				t.Errorf("Offset = %d, want %d", tt.input.Offset, tt.expectedOffset)
			}
		})
	}
}

func TestSearchOptions_Validate(t *testing.T) {
	over := SearchOptions{Limit: MaxSearchLimit + 1}
	if err := over.Validate(); err == nil {
		t.Error("expected error for limit over maximum")
	}

	ok := SearchOptions{Limit: MaxSearchLimit}
	if err := ok.Validate(); err != nil {
		t.Errorf("unexpected error at maximum limit: %v", err)
	}
}

func TestSearchOptions_Matches(t *testing.T) {
	folderA := "folder-a"
	doc := &Document{
		ID:       "doc-1",
		FileName: "Acme-Invoice-March.pdf",
		FolderID: folderA,
		Tags:     []string{"Finance", "q1"},
	}

	tests := []struct {
		name string
		opts SearchOptions
		want bool
	}{
		{name: "blank keyword matches everything", opts: SearchOptions{}, want: true},
		{name: "whitespace keyword matches everything", opts: SearchOptions{Keyword: "   "}, want: true},
		{name: "case-insensitive file name match", opts: SearchOptions{Keyword: "acme-invoice"}, want: true},
		{name: "case-insensitive tag match", opts: SearchOptions{Keyword: "FINANCE"}, want: true},
		{name: "substring of tag matches", opts: SearchOptions{Keyword: "nanc"}, want: true},
		{name: "no match", opts: SearchOptions{Keyword: "receipt"}, want: false},
		{name: "folder filter matches", opts: SearchOptions{FolderID: &folderA}, want: true},
		{name: "unknown status matches nothing", opts: SearchOptions{Status: "archived"}, want: false},
		{name: "derived pending status matches", opts: SearchOptions{Status: "pending"}, want: true},
		{name: "wrong status excludes", opts: SearchOptions{Status: "completed"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Matches(doc); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchOptions_MatchesOtherFolder(t *testing.T) {
	other := "folder-b"
	doc := &Document{ID: "doc-1", FileName: "report.pdf", FolderID: "folder-a"}
	opts := SearchOptions{FolderID: &other}
	if opts.Matches(doc) {
		t.Error("document in another folder should not match")
	}
}
