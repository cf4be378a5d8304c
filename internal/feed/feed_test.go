package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgball2608/socialhub/internal/feed"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"no tags here", []string{}},
		{"Sunrise #Travel #Photography", []string{"#Travel", "#Photography"}},
		{"#go_lang, #1st!", []string{"#go_lang", "#1st"}},
		{"# alone and a#b", []string{"#b"}},
		{"#dup #dup", []string{"#dup", "#dup"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, feed.ExtractHashtags(tt.in), tt.in)
	}
}

func TestParseFilter(t *testing.T) {
	f, ok := feed.ParseFilter("")
	assert.True(t, ok)
	assert.Equal(t, feed.FilterAll, f)

	f, ok = feed.ParseFilter("media")
	assert.True(t, ok)
	assert.Equal(t, feed.FilterMedia, f)

	_, ok = feed.ParseFilter("videos")
	assert.False(t, ok)
}
