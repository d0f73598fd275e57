package yatghelpers_test

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/YaCodeDev/GoYaTgHelpers/yatghelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeepLinkedURL_Flow(t *testing.T) {
	t.Run("Start Link", func(t *testing.T) {
		url, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", "abc-123", false)
		require.Nil(t, err)
		assert.Equal(t, "https://t.me/JamesTheMockBot?start=abc-123", url)
	})

	t.Run("Group Link", func(t *testing.T) {
		url, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", "abc-123", true)
		require.Nil(t, err)
		assert.Equal(t, "https://t.me/JamesTheMockBot?startgroup=abc-123", url)
	})

	t.Run("Empty Payload Returns Bare Link", func(t *testing.T) {
		url, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", "", false)
		require.Nil(t, err)
		assert.Equal(t, "https://t.me/JamesTheMockBot", url)
	})

	t.Run("Underscore And Digits In Payload", func(t *testing.T) {
		url, err := yatghelpers.CreateDeepLinkedURL("jamesbot", "ref_42", false)
		require.Nil(t, err)
		assert.Equal(t, "https://t.me/jamesbot?start=ref_42", url)
	})

	t.Run("Invalid Username Returns Error", func(t *testing.T) {
		_, err := yatghelpers.CreateDeepLinkedURL("bad!", "x", false)
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yatghelpers.ErrInvalidBotUsername)
		assert.Equal(t, http.StatusBadRequest, err.Code())
	})

	t.Run("Payload Over Limit Returns Error Naming The Limit", func(t *testing.T) {
		payload := strings.Repeat("a", yatghelpers.MaxDeepLinkLength+1)

		_, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", payload, false)
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yatghelpers.ErrDeepLinkPayloadTooLong)
		assert.Contains(t, err.Error(), strconv.Itoa(yatghelpers.MaxDeepLinkLength))
	})

	t.Run("Payload At Limit Is Accepted", func(t *testing.T) {
		payload := strings.Repeat("a", yatghelpers.MaxDeepLinkLength)

		_, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", payload, false)
		require.Nil(t, err)
	})

	t.Run("Payload With Space Returns Error", func(t *testing.T) {
		_, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", "a b", false)
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yatghelpers.ErrDeepLinkPayloadInvalidChars)
	})

	t.Run("Payload With Disallowed Symbol Returns Error", func(t *testing.T) {
		_, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", "a=b", false)
		require.NotNil(t, err)
		assert.ErrorIs(t, err, yatghelpers.ErrDeepLinkPayloadInvalidChars)
	})
}
