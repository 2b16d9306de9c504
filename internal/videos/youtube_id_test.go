package videos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"watch", "https://www.youtube.com/watch?v=abc123", "abc123", true},
		{"watch with extra params", "https://www.youtube.com/watch?v=abc123&list=PL1&t=42", "abc123", true},
		{"watch with fragment", "https://www.youtube.com/watch?v=abc123#comments", "abc123", true},
		{"v after other params", "https://www.youtube.com/watch?feature=share&v=late99", "late99", true},
		{"short link", "https://youtu.be/xyz789", "xyz789", true},
		{"short link with query", "https://youtu.be/xyz789?si=tracking", "xyz789", true},
		{"embed", "https://www.youtube.com/embed/emb456", "emb456", true},
		{"legacy v path", "https://www.youtube.com/v/old123", "old123", true},
		{"e path", "https://www.youtube.com/e/eee111", "eee111", true},
		{"shorts", "https://www.youtube.com/shorts/short42", "short42", true},
		{"shorts with query", "https://www.youtube.com/shorts/short42?feature=share", "short42", true},
		{"no scheme", "youtube.com/watch?v=abc123", "abc123", true},
		{"mobile host", "https://m.youtube.com/watch?v=mob777", "mob777", true},
		{"padded", "  https://youtu.be/pad000  ", "pad000", true},
		{"watch path fallback", "https://www.youtube.com/watch/?v=abc123", "abc123", true},
		{"shorts under another path", "https://www.youtube.com/feed/shorts/abc", "abc", true},
		{"shorts with explicit port", "https://youtube.com:443/shorts/xyz", "xyz", true},
		{"shorts segment without id", "https://www.youtube.com/feed/shorts", "", false},
		{"empty", "", "", false},
		{"watch without id", "https://www.youtube.com/watch", "", false},
		{"empty v", "https://www.youtube.com/watch?v=", "", false},
		{"shorts without id", "https://www.youtube.com/shorts/", "", false},
		{"channel page", "https://www.youtube.com/@somechannel", "", false},
		{"other site", "https://vimeo.com/123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractYouTubeID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
