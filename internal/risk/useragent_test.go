package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBotLike(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want bool
	}{
		{"empty agent is not flagged", "", false},
		{"desktop chrome", browserUA, false},
		{"mobile safari", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", false},
		{"curl", "curl/8.4.0", true},
		{"wget", "Wget/1.21.3", true},
		{"python requests", "python-requests/2.31.0", true},
		{"go http client", "Go-http-client/2.0", true},
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"headless chrome", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/120.0 Safari/537.36", true},
		{"node fetch", "node-fetch/1.0 (+https://github.com/bitinn/node-fetch)", true},
		{"generic crawler", "SomeCompany-Crawler/3.1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBotLike(tt.ua))
		})
	}
}
