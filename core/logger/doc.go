// Package logger provides slog attribute helpers shared by the inflector
// packages. Helpers are nil-safe: passing a nil error or an empty value
// yields an empty Attr that slog drops, so call sites never need nil checks.
//
// # Usage
//
//	import "github.com/dmitrymomot/inflector/core/logger"
//
//	log.Error("inflection load failed",
//		logger.Locale("en"),
//		logger.Error(err),
//	)
//
//	log.Debug("pattern resolved",
//		logger.Kind("gender"),
//		logger.Token("m"),
//		logger.Pattern("@{f:Lady|m:Sir}"),
//	)
//
// Generic helpers Group, Component, Count and Key cover everything else:
//
//	log.Info("registry replaced",
//		logger.Component("loader"),
//		logger.Count("locales", 3),
//	)
package logger
