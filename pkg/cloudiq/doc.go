// Package cloudiq provides types, interfaces, and helpers for working with
// the Crayon CloudIQ API.
//
// # Overview
//
// The cloudiq package defines the domain types (e.g., Organization,
// CustomerTenant, Subscription, AgreementProduct) and the interfaces for
// resource-oriented clients (e.g., OrganizationsClient,
// CustomerTenantsClient). A concrete implementation of these clients is
// provided by the ciqclient package, which wires configuration, transport,
// and authentication. Most consumers should import ciqclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/cloudiq/pkg/ciqclient"
//	  "github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ciqclient.New(ctx, &cloudiq.Config{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    Username:     "user@example.com",
//	    Password:     "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of organizations
//	  orgs, err := cli.Organizations().List(ctx, cloudiq.NewQueryParams().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = orgs
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (page, page size, search,
// free-form filters). The package also provides helpers for iterating or
// collecting paginated results:
//
//	it := cloudiq.NewPageIterator(cli.Organizations().List, cloudiq.NewQueryParams())
//	for it.HasNext() {
//	  org, err := it.Next(ctx)
//	  if err != nil { break }
//	  _ = org
//	}
//
// or fetch all results at once:
//
//	all, err := cloudiq.FetchAllPages(ctx, cli.Organizations().List, nil)
//	if err != nil { /* handle error */ }
//	_ = all
//
// # Errors
//
// API errors are represented by ResponseError, which carries the HTTP status
// and the ErrorCode/Message pair CloudIQ returns. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common cases.
// The library never terminates the process; every failure is returned.
//
// # Interceptors and caching
//
// The package includes request/response interceptors (logging, metrics, rate
// limiting) and a pluggable Cache abstraction with in-memory and NATS
// JetStream KV backends, intended for the slow-moving dictionary endpoints
// (billing cycles, regions, programs, publishers). The ciqclient package
// composes these pieces for a sensible default client.
package cloudiq
