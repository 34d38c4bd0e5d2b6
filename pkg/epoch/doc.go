// Package epoch converts time values to whole seconds since the Unix epoch.
//
// JWT temporal claims (iat, exp, nbf) are defined as integer epoch seconds,
// while Go times and many upstream APIs carry millisecond or nanosecond
// precision. These helpers perform the flooring conversion in one place so
// claim construction stays consistent across the library.
//
// # Usage
//
//	import "github.com/clearauth/oauthkit/pkg/epoch"
//
//	iat := epoch.Now()
//	exp := epoch.Seconds(time.Now().Add(time.Hour))
package epoch
