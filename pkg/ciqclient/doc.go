// Package ciqclient provides the main entry point for creating CloudIQ API
// clients.
//
// Most consumers construct a client with New and a cloudiq.Config, or with
// one of the convenience constructors:
//
//	client, err := ciqclient.NewWithPassword(ctx, "",
//	    "client-id", "client-secret", "user@example.com", "secret")
//	if err != nil {
//	    // handle error
//	}
//
//	orgs, err := client.Organizations().List(ctx, nil)
//
// An empty endpoint targets the production CloudIQ API. The package
// normalizes the endpoint, derives the token URL, and validates that the
// password grant has a complete credential set before any request is made.
package ciqclient
