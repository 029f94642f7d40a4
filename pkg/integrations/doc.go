// Package integrations provides HTTP plumbing for package registry APIs.
//
// # Overview
//
// Registry-specific clients live in subpackages and share the [Client] type
// defined here:
//
//   - [npm]: publish dates from the npm registry
//   - [registrytest]: an in-process fake npm registry for tests
//
// # Client Pattern
//
//	c := npm.NewClient("")  // default registry
//	t, err := c.PublishTime(ctx, "lodash", "4.17.21")
//
// [Client] handles:
//   - request construction with context and default headers
//   - status mapping: 404 to [ErrNotFound], other non-2xx to [ErrNetwork]
//   - JSON decoding, with decode failures reported as [ErrInvalidResponse]
//   - HTTP hooks from [observability]
//
// Requests are never retried and responses are never cached: every call is
// exactly one round trip.
//
// [npm]: github.com/matzehuels/pubdate/pkg/integrations/npm
// [registrytest]: github.com/matzehuels/pubdate/pkg/integrations/registrytest
// [observability]: github.com/matzehuels/pubdate/pkg/observability
package integrations
