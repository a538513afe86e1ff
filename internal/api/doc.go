// Package api implements the HTTP transport for the VoiceForge API.
//
// It builds authenticated requests, performs single-attempt buffered or
// streaming request/response cycles, classifies responses as binary audio or
// structured JSON, and translates HTTP status codes into typed errors.
package api
