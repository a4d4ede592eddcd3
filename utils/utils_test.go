package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(7, "mario", "s3cret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "mario", claims.Username)

	_, err = ParseToken(tok, "other")
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	tok, err := GenerateToken(7, "mario", "s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(tok, "s3cret")
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Greek Salad", CleanText("  <b>Greek</b> Salad<script>alert(1)</script> "))
	assert.Equal(t, "Fish & Chips", CleanText("Fish &amp; Chips"))
	assert.Equal(t, "", CleanText("<img src=x onerror=alert(1)>"))
	assert.Equal(t, "a < b", CleanText("a &lt; b"))
}

func TestCleanTextEncodedMarkup(t *testing.T) {
	cases := map[string]string{
		"&lt;script&gt;alert(1)&lt;/script&gt;Pasta":              "Pasta",
		"&lt;img src=x onerror=alert(1)&gt;":                      "",
		"&amp;lt;b&amp;gt;Bold&amp;lt;/b&amp;gt; Soup":            "Bold Soup",
		"&#60;a href=&#34;javascript:x&#34;&#62;Tart&#60;/a&#62;": "Tart",
	}
	for in, want := range cases {
		got := CleanText(in)
		assert.Equal(t, want, got, in)
		assert.NotContains(t, got, "<", in)
		assert.Equal(t, got, CleanText(got), "cleaning is idempotent")
	}
}
