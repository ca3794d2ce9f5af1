package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"xir/internal/lsp"
)

const sampleKernel = `
struct Particle {
  pos: vec<f32, 3>,
}

kernel fn advance(p: &Particle) {
  let dt: f32 = 1.0;
  p.pos = p.pos;
}
`

// noopContext builds a glsp.Context whose Notify is a no-op, so handler
// methods that publish diagnostics can run outside a live client session.
func noopContext() *glsp.Context {
	return &glsp.Context{Notify: func(method string, params any) {}}
}

func uriFor(t *testing.T, name string) string {
	t.Helper()
	abs, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	return "file://" + filepath.ToSlash(abs)
}

func TestTextDocumentDidOpenReturnsNoError(t *testing.T) {
	handler := lsp.NewHandler()
	uri := uriFor(t, "ok.xk")

	err := handler.TextDocumentDidOpen(noopContext(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sampleKernel},
	})

	require.NoError(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewHandler()
	uri := uriFor(t, "particle.xk")

	err := handler.TextDocumentDidOpen(noopContext(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sampleKernel},
	})
	require.NoError(t, err)

	tokens, err := handler.TextDocumentSemanticTokensFull(noopContext(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	require.NotEmpty(t, tokens.Data)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.NotEmpty(t, decoded)

	tokenTypes := make(map[string]int)
	for _, token := range decoded {
		tokenTypes[token.Type]++
	}

	require.Greater(t, tokenTypes["type"], 0, "should have type tokens for struct names")
	require.Greater(t, tokenTypes["function"], 0, "should have function tokens for kernel names")
	require.Greater(t, tokenTypes["property"], 0, "should have property tokens for struct fields")
	require.Greater(t, tokenTypes["variable"], 0, "should have variable tokens for locals")
}

func TestTextDocumentDidCloseDropsState(t *testing.T) {
	handler := lsp.NewHandler()
	uri := uriFor(t, "dropped.xk")

	require.NoError(t, handler.TextDocumentDidOpen(noopContext(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sampleKernel},
	}))

	require.NoError(t, handler.TextDocumentDidClose(noopContext(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	tokens, err := handler.TextDocumentSemanticTokensFull(noopContext(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Empty(t, tokens.Data)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1,
			Char:      char + 1,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}
