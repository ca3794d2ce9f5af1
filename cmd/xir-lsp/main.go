// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"log"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"xir/internal/lsp"
)

const lsName = "xirc-lsp"

var version = "0.0.1"

func main() {
	wsAddr := flag.String("ws", "", "serve over WebSocket at this address instead of stdio, e.g. :4389")
	flag.Parse()

	commonlog.Configure(1, nil)

	docHandler := lsp.NewHandler()
	handler := protocol.Handler{
		Initialize:                     docHandler.Initialize,
		Initialized:                    docHandler.Initialized,
		Shutdown:                       docHandler.Shutdown,
		TextDocumentDidOpen:            docHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           docHandler.TextDocumentDidClose,
		TextDocumentDidChange:          docHandler.TextDocumentDidChange,
		TextDocumentCompletion:         docHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: docHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	if *wsAddr == "" {
		log.Println("Starting", lsName, version, "over stdio")
		if err := s.RunStdio(); err != nil {
			log.Fatalln("lsp server stopped:", err)
		}
		return
	}

	log.Println("Starting", lsName, version, "over WebSocket at", *wsAddr)
	if err := s.RunWebSocket(*wsAddr); err != nil {
		log.Fatalln("lsp server stopped:", err)
	}
}
