// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the content service.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, CORS, compression and bearer-token checks on write routes
// are handled here before requests reach the service layer.
package http
