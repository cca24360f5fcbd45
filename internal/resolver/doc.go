// Package resolver computes the command used to invoke app-builder.
//
// Resolution order (first match wins):
//  1. USE_SYSTEM_APP_BUILDER=true returns the bare "app-builder" name,
//     leaving lookup to the system PATH
//  2. CUSTOM_APP_BUILDER_PATH returns that path, made absolute against the
//     working directory
//  3. The platform layout under the base directory:
//     mac/app-builder_<arch>, win/<arch>/app-builder.exe or
//     linux/<arch>/app-builder
//
// Usage:
//
//	r := resolver.NewResolver(&resolver.Config{Logger: slog.Default()})
//	path, err := r.Resolve()
package resolver
