// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"net/http"

	"github.com/MKhiriev/go-app-scaffold/internal/config"
)

// Stage inspects a request against a configuration snapshot. Stages must not
// modify the request and must not keep state between calls.
type Stage func(r *http.Request, cfg config.StructuredConfig) Decision

// SnapshotSource provides the current configuration. *config.Holder
// satisfies it.
type SnapshotSource interface {
	Snapshot() config.StructuredConfig
}

// RejectFunc writes the response for a rejected request.
type RejectFunc func(w http.ResponseWriter, r *http.Request, reason error)

// Pipeline runs stages in order against one snapshot per request.
type Pipeline struct {
	source SnapshotSource
	stages []Stage
}

// NewPipeline builds a pipeline over the given stages.
func NewPipeline(source SnapshotSource, stages ...Stage) *Pipeline {
	return &Pipeline{
		source: source,
		stages: stages,
	}
}

// NewAPIPipeline builds the pipeline that guards the API: the health check
// bypass followed by the shared bearer token check.
func NewAPIPipeline(source SnapshotSource) *Pipeline {
	return NewPipeline(source, HealthCheckBypass(), BearerToken())
}

// Decide runs the stages until one of them forwards or rejects. A request
// for which every stage returns [Next] is forwarded.
func (p *Pipeline) Decide(r *http.Request) Decision {
	cfg := p.source.Snapshot()

	for _, stage := range p.stages {
		if d := stage(r, cfg); d.Outcome != Next {
			return d
		}
	}

	return Allow()
}

// Middleware adapts the pipeline to the net/http middleware chain. Forwarded
// requests reach next unmodified; rejected ones are handed to reject and
// never reach next.
func (p *Pipeline) Middleware(reject RejectFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := p.Decide(r)
			if d.Outcome == Reject {
				reject(w, r, d.Reason)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
