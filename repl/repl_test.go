package repl

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartCompilesSingleFunction(t *testing.T) {
	src := "kernel fn add(a: i32, b: i32) -> i32 {\n  return a + b;\n}\n"
	var prompts, out bytes.Buffer

	Start(&prompts, &out, strings.NewReader(src))

	assert.Contains(t, out.String(), "add")
	assert.NotContains(t, out.String(), "error")
}

func TestStartReportsSyntaxError(t *testing.T) {
	src := "kernel fn broken( {\n  return 1;\n}\n"
	var prompts, out bytes.Buffer

	Start(&prompts, &out, strings.NewReader(src))

	assert.NotEmpty(t, out.String())
}

func TestReadFunctionBalancesBraces(t *testing.T) {
	src := "kernel fn f() -> i32 {\n  if true {\n    return 1;\n  }\n  return 0;\n}\n"
	scanner := bufio.NewScanner(strings.NewReader(src))

	text, ok := readFunction(scanner)

	assert.True(t, ok)
	assert.Equal(t, src, text)
}
