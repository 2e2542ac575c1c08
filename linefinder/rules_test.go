package linefinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHorizontal(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a, b, c    int
		leftTouch  bool
		rightTouch bool
		want       bool
	}{
		"both touch long run":     {a: 6, leftTouch: true, rightTouch: true, want: true},
		"left touch with tail":    {a: 6, b: 2, leftTouch: true, want: true},
		"left touch two tails":    {a: 6, b: 2, c: 1, leftTouch: true, want: false},
		"right touch with head":   {a: 2, b: 6, rightTouch: true, want: true},
		"free long run":           {a: 4, want: true},
		"free head long tail":     {a: 1, b: 8, c: 3, want: true},
		"free short run":          {a: 3, want: false},
		"free head long long":     {a: 1, b: 8, c: 4, want: false},
		"right touch short runs":  {a: 2, b: 2, rightTouch: true, want: false},
		"left touch short run":    {a: 3, leftTouch: true, want: false},
		"free two long runs":      {a: 5, b: 5, want: false},
		"right touch long then 1": {a: 6, b: 1, rightTouch: true, want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := isHorizontal(tc.a, tc.b, tc.c, tc.leftTouch, tc.rightTouch)
			assert.Equal(t, tc.want, got)
		})
	}
}
