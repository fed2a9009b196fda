package llm

import "testing"

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    payload
		wantErr bool
	}{
		{
			name:    "plain JSON",
			content: `{"name": "a", "count": 2}`,
			want:    payload{Name: "a", Count: 2},
		},
		{
			name:    "json fence",
			content: "```json\n{\"name\": \"a\", \"count\": 2}\n```",
			want:    payload{Name: "a", Count: 2},
		},
		{
			name:    "bare fence",
			content: "```\n{\"name\": \"b\", \"count\": 1}\n```",
			want:    payload{Name: "b", Count: 1},
		},
		{
			name:    "surrounding whitespace",
			content: "\n\n  {\"name\": \"c\", \"count\": 0}  \n",
			want:    payload{Name: "c", Count: 0},
		},
		{
			name:    "trailing comma repaired",
			content: `{"name": "d", "count": 3,}`,
			want:    payload{Name: "d", Count: 3},
		},
		{
			name:    "not JSON",
			content: "I could not produce JSON, sorry.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON[payload](tt.content)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractJSON() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("0123456789", 8); got != "01234..." {
		t.Errorf("truncate = %q", got)
	}
}
