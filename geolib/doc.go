// This package provides a set of structs and functions which are used
// to enrich proxy node lists with geolocation data.
//
// geolib is core of the nodes-subconverter project. You can treat the
// rest of the application as an _example_ on how to use this library:
// how to read subscriptions, how to pass parameters from HTTP requests,
// how to implement providers.
//
// Annotator is a main entity of the geolib. This struct contains all
// logic related to node enrichment: how to pace lookups so an upstream
// rate limit is respected, how to classify lookup failures and how to
// rewrite node display names based on outcomes.
//
// Annotator accepts a list of nodes and returns a list of the same
// length and order where every display name carries either a real
// location mark or a failure mark. Addresses are never modified.
package geolib
