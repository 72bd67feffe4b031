package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creemers/site/pkg/logger"
)

type tag string

func (t tag) String() string { return string(t) }

func TestGroup(t *testing.T) {
	attr := logger.Group("item", slog.Int("id", 1), slog.String("state", "expanded"))
	require.Equal(t, "item", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "state", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{name: "language", attr: logger.Language(tag("nl")), key: "lang", want: "nl"},
		{name: "key", attr: logger.Key("servicesTitle"), key: "key", want: "servicesTitle"},
		{name: "item", attr: logger.ItemID(2), key: "item_id", want: int64(2)},
		{name: "page", attr: logger.PageID("p-1"), key: "page_id", want: "p-1"},
		{name: "component", attr: logger.Component("disclosure"), key: "component", want: "disclosure"},
		{name: "event", attr: logger.Event("toggle"), key: "event", want: "toggle"},
		{name: "duration", attr: logger.Duration(time.Second), key: "duration", want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	assert.True(t, logger.Language(nil).Equal(slog.Attr{}))
	assert.True(t, logger.PageID(nil).Equal(slog.Attr{}))
}
