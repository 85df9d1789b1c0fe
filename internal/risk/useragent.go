package risk

import (
	"strings"

	"github.com/mssola/useragent"
)

// botMarkers catches CLI tools and automation frameworks the parser's bot
// database does not cover.
var botMarkers = []string{
	"bot", "crawl", "spider", "scrape",
	"curl", "wget", "httpie", "python", "java/", "go-http-client",
	"node-fetch", "axios", "okhttp", "libwww",
	"headless", "phantomjs", "selenium", "puppeteer", "playwright",
}

// IsBotLike reports whether the user agent looks like a bot, crawler, or
// CLI tool rather than a real browser. An empty user agent is treated as
// unknown, not bot-like: plenty of legitimate clients strip the header.
func IsBotLike(rawUA string) bool {
	if rawUA == "" {
		return false
	}
	if ua := useragent.New(rawUA); ua.Bot() {
		return true
	}
	lowered := strings.ToLower(rawUA)
	for _, marker := range botMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
