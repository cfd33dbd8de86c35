package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPathFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		segments []string
		want     string
	}{
		{
			name:     "menu public url",
			url:      "https://cdn.example.com/storage/public/menus/latte.png",
			segments: MenuPathSegments,
			want:     "latte.png",
		},
		{
			name:     "event singular bucket",
			url:      "https://cdn.example.com/storage/event/tasting.jpg",
			segments: EventPathSegments,
			want:     "tasting.jpg",
		},
		{
			name:     "nested object path survives",
			url:      "https://cdn.example.com/public/menus/2026/08/latte.png",
			segments: MenuPathSegments,
			want:     "2026/08/latte.png",
		},
		{
			name:     "query string stripped",
			url:      "https://cdn.example.com/menus/latte.png?token=abc",
			segments: MenuPathSegments,
			want:     "latte.png",
		},
		{
			name:     "no known segment",
			url:      "https://cdn.example.com/images/latte.png",
			segments: MenuPathSegments,
			want:     "",
		},
		{
			name:     "empty url",
			url:      "",
			segments: MenuPathSegments,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectPathFromURL(tt.url, tt.segments))
		})
	}
}
