// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	myGRPC "github.com/MKhiriev/go-portfolio/internal/handler/grpc"
	"github.com/MKhiriev/go-portfolio/internal/logger"

	"google.golang.org/grpc"
)

const healthProbeInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener
	probeCtx        context.Context
	stopProbe       context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	probeCtx, stopProbe := context.WithCancel(context.Background())
	return &grpcServer{
		handler:   handler,
		address:   cfg.GRPCAddress,
		server:    s,
		probeCtx:  probeCtx,
		stopProbe: stopProbe,
		logger:    logger,
	}
}

func (g *grpcServer) listen() error {
	if g.gRPCNetListener != nil {
		return nil
	}
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.gRPCNetListener = lis
	return nil
}

func (g *grpcServer) RunServer() {
	if g.gRPCNetListener == nil {
		if err := g.listen(); err != nil {
			g.logger.Error().Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC listen failed")
			return
		}
	}

	go g.handler.Watch(g.probeCtx, healthProbeInterval)

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server stopped")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopProbe()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
