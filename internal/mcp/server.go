// Package mcp exposes the campaign index to agents over the Model
// Context Protocol.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	idx Querier
	mcp *sdk.Server
}

func NewServer(idx Querier, version string) *Server {
	s := &Server{
		idx: idx,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "questlog",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
