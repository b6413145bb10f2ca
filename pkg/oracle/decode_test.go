package oracle

import (
	"errors"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain json untouched",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "fenced with language tag",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "bare fences",
			in:   "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "fence directly against body",
			in:   "```{\"a\":1}```",
			want: `{"a":1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```json\n[1,2]\n```  \n",
			want: `[1,2]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(stripFences([]byte(tt.in))); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Questions []Question `json:"questions"`
	}

	body := "```json\n{\"questions\":[{\"id\":\"q1\",\"text\":\"hi\",\"type\":\"free_text\"}]}\n```"
	got, err := decodeJSON[payload]([]byte(body))
	if err != nil {
		t.Fatalf("decodeJSON() error = %v", err)
	}
	if len(got.Questions) != 1 || got.Questions[0].ID != "q1" {
		t.Errorf("decodeJSON() = %+v", got)
	}

	if _, err := decodeJSON[payload]([]byte("the model apologizes instead of answering")); !errors.Is(err, ErrMalformed) {
		t.Errorf("decodeJSON() error = %v, want ErrMalformed", err)
	}
}
