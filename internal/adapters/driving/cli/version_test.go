package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "dev", want: "drawback version dev\n"},
		{version: "1.2.0", want: "drawback version 1.2.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			originalVersion := version
			version = tt.version
			defer func() { version = originalVersion }()

			out, err := execute(t, "version")

			assert.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
