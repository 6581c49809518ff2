package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/jot"
)

func TestVersionCmd_SingleLine(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "jot v"+strings.TrimSpace(jot.Version)+"\n", buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
