// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides structured logging utilities for the deployer
// binaries (appd and appctl).
//
// # Overview
//
// This package wraps the standard library slog package with consistent
// defaults: JSON records on stderr, module and version attributes on every
// record, source location at debug level, and level selection through the
// LOG_LEVEL environment variable.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("appd", version)
//	    slog.Info("deploying", "app", "demo", "namespace", "default")
//	}
//
// Setting an explicit level (CLI --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("appctl", version, "debug")
//
// Bridging to APIs that take *log.Logger:
//
//	srv := &http.Server{ErrorLog: logging.NewLogLogger(slog.LevelError)}
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "application deployed",
//	    "module": "appd",
//	    "version": "v1.0.0",
//	    "app": "demo"
//	}
package logging
