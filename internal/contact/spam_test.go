package contact

import (
	"strings"
	"testing"
)

func TestIsSpam(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"ordinary inquiry", "Please call me about pricing for two restaurants.", false},
		{"keyword lottery", "Win the lottery now!", true},
		{"keyword case insensitive", "CLICK HERE for a great deal", true},
		{"keyword inside word not matched", "We run a scasino... actually a bistro", false},
		{"five links allowed", "see http://a http://b http://c http://d https://e", false},
		{"six links rejected", "see http://a http://b http://c http://d http://e https://f", true},
		{"sixteen repeated characters", "hello " + strings.Repeat("a", 16) + " world", true},
		{"fifteen repeated characters pass", "hello " + strings.Repeat("a", 15) + " world", false},
		{"angle brackets", "my message <with markup>", true},
		{"curly braces", "payload {injected}", true},
		{"script token", "please run this script for me", true},
		{"onclick token", "the onclick thing is broken", true},
		{"mostly caps", "THIS IS VERY URGENT PLEASE reply", true},
		{"mixed case ok", "Hello, we would like a demo of FastCaisse.", false},
		{"digits only scores zero caps", "0123456789 0123456789", false},
		{"empty message", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSpam(tt.message); got != tt.want {
				t.Errorf("IsSpam(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestSpamScenarioFromForm(t *testing.T) {
	// A realistic bot payload: keyword plus a pile of links.
	msg := "Win the lottery now! http://a http://b http://c http://d http://e http://f"
	if !IsSpam(msg) {
		t.Error("bot payload with keyword and 6 links passed the heuristics")
	}
}

func TestLongestCharRun(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 1},
		{"aabbbcc", 3},
		{"aa aa", 2}, // runs do not span whitespace
		{strings.Repeat("!", 20), 20},
	}

	for _, tt := range tests {
		if got := longestCharRun(tt.s); got != tt.want {
			t.Errorf("longestCharRun(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestCapsRatio(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"ABC", 1},
		{"AbCd", 0.5},
		{"123 456", 0},
	}

	for _, tt := range tests {
		if got := capsRatio(tt.s); got != tt.want {
			t.Errorf("capsRatio(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
