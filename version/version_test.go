package version_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/ndoc/version"
)

func TestString(t *testing.T) {
	t.Parallel()

	got := version.String()

	want := version.Version
	if want == "" {
		want = "devel"
	}

	assert.True(t, strings.HasPrefix(got, want+" (rev "+version.Revision), got)
	assert.Contains(t, got, runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH)
	assert.True(t, strings.HasSuffix(got, ")"), got)
}
