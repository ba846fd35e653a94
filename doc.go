// Package smarttub provides a Go client library for the SmartTub cloud API,
// used to monitor and control SmartTub-equipped hot tubs.
//
// The library authenticates a user account, discovers the account's spas, and
// exposes typed operations for status, pumps, lights, reminders, energy
// usage, and configuration changes.
//
// # Authentication
//
// Login exchanges the account's email and password for a bearer token via the
// vendor's Auth0 password-realm grant. It must be called before any other
// operation:
//
//	client := smarttub.NewClient()
//	session, err := client.Login(ctx, "user@example.com", "password")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("account:", session.AccountID)
//
// The account ID is read from the access token's claims without verifying the
// token signature. The token arrives over TLS directly from the vendor's auth
// endpoint and is never accepted from any other source; callers who need a
// stronger trust boundary should verify the account ID out of band.
//
// Tokens are not refreshed automatically. When Session.Expired reports true
// (or an API call fails with a 401), call Login again.
//
// # Basic Usage
//
// List spas and read status:
//
//	account, err := client.GetAccount(ctx)
//	spas, err := account.GetSpas(ctx)
//	for _, spa := range spas {
//	    status, err := spa.GetStatus(ctx)
//	    ...
//	}
//
// Issue commands:
//
//	err = spa.SetHeatMode(ctx, smarttub.HeatModeAuto)
//	err = spa.SetTemperature(ctx, 38.5)
//
//	pumps, err := spa.GetPumps(ctx)
//	err = pumps[0].Toggle(ctx)
//
//	lights, err := spa.GetLights(ctx)
//	err = lights[0].Set(ctx, 50, smarttub.LightModeBlue)
//
// All objects are snapshots: no field is updated by a mutating call. A
// read-after-write is only consistent if the caller re-fetches.
//
// # Error Handling
//
// Validation of enumerated and cross-field arguments happens before any
// request is sent; HTTP failures surface unrecovered. Check error classes
// with the Is* helpers:
//
//	err := spa.SetHeatMode(ctx, "TROPICAL")
//	if smarttub.IsInvalidArgument(err) {
//	    // rejected client-side, no request was made
//	}
//	if smarttub.IsUnauthorized(err) {
//	    // token expired; re-login
//	}
//
// # Concurrency
//
// Every operation is a single blocking HTTP round trip; the library starts no
// goroutines and keeps no cache. A Client may be shared for concurrent
// requests, but Login replaces the session token used by in-flight requests,
// so callers that re-login during operation must serialize externally (or use
// one Client per goroutine).
package smarttub
