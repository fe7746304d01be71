// Package logger provides structured logging for the client using zerolog.
//
// The client logs nothing by default (logger.Nop()); applications opt in by
// passing a configured Logger to the request client. Both JSON and console
// formats are supported.
//
//	log := logger.New(&logger.Config{Level: "debug", Format: "json"})
//	log.Info("dispatched", logger.Fields("operation", "ListQueues"))
package logger
